package cmd

import "github.com/arl/navreg/recast"

// buildCompactHeightfield turns a sparse heightfield into the flat,
// neighbor-connected CompactHeightfield the region pipeline operates on.
// This is the external-collaborator step the recast package deliberately
// does not provide (see DESIGN.md) - the CLI plays that role for its own
// procedurally-generated demo heightfield only.
func buildCompactHeightfield(walkableHeight, walkableClimb int32, hf *recast.Heightfield) *recast.CompactHeightfield {
	w := hf.Width
	h := hf.Height

	spanCount := int32(0)
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			for _, s := range hf.Column(x, y) {
				if s.Area != recast.RC_NULL_AREA {
					spanCount++
				}
			}
		}
	}

	chf := &recast.CompactHeightfield{
		Width:          w,
		Height:         h,
		SpanCount:      spanCount,
		WalkableHeight: walkableHeight,
		WalkableClimb:  walkableClimb,
		BMin:           hf.BMin,
		BMax:           hf.BMax,
		Cs:             hf.Cs,
		Ch:             hf.Ch,
		Cells:          make([]recast.CompactCell, w*h),
		Spans:          make([]recast.CompactSpan, spanCount),
		Areas:          make([]uint8, spanCount),
	}

	// Fill in cells and spans.
	idx := uint32(0)
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := &chf.Cells[x+y*w]
			c.Index = idx
			count := uint8(0)
			spans := hf.Column(x, y)
			for si, s := range spans {
				if s.Area == recast.RC_NULL_AREA {
					continue
				}
				bot := int32(s.Smax)
				var top int32
				if si+1 < len(spans) {
					top = int32(spans[si+1].Smin)
				} else {
					top = 1<<16 - 1
				}
				chf.Spans[idx].Y = uint16(clampU16(bot))
				height := top - bot
				if height > 255 {
					height = 255
				}
				chf.Spans[idx].H = uint8(height)
				chf.Areas[idx] = s.Area
				idx++
				count++
			}
			c.Count = count
		}
	}

	// Find neighbor connections.
	const maxLayers = recast.RC_NOT_CONNECTED - 1
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := &chf.Cells[x+y*w]
			for i := int32(c.Index); i < int32(c.Index)+int32(c.Count); i++ {
				s := &chf.Spans[i]

				for dir := int32(0); dir < 4; dir++ {
					recast.SetCon(s, dir, recast.RC_NOT_CONNECTED)

					nx := x + recast.GetDirOffsetX(dir)
					ny := y + recast.GetDirOffsetY(dir)
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}

					nc := &chf.Cells[nx+ny*w]
					for k := int32(nc.Index); k < int32(nc.Index)+int32(nc.Count); k++ {
						ns := &chf.Spans[k]
						bot := maxI32(int32(s.Y), int32(ns.Y))
						top := minI32(int32(s.Y)+int32(s.H), int32(ns.Y)+int32(ns.H))

						if (top-bot) >= walkableHeight && absI32(int32(ns.Y)-int32(s.Y)) <= walkableClimb {
							lidx := k - int32(nc.Index)
							if lidx < 0 || lidx > maxLayers {
								continue
							}
							recast.SetCon(s, dir, lidx)
							break
						}
					}
				}
			}
		}
	}

	return chf
}

func clampU16(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 1<<16-1 {
		return 1<<16 - 1
	}
	return v
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func absI32(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}
