package recast

import "github.com/arl/assertgo"

// calculateDistanceField computes, for every span, the chamfer distance
// (axis cost 2, diagonal cost 3, synthesized by composing two axis links
// one direction apart) to the nearest boundary span - a span whose area
// differs from one of its 4-connected neighbors, or which is missing a
// neighbor outright. The result is written into src; maxDist receives the
// largest distance found.
func calculateDistanceField(chf *CompactHeightfield, src []uint16) (maxDist uint16) {
	w := chf.Width
	h := chf.Height

	for i := range src {
		src[i] = 0xffff
	}

	// Mark boundary cells.
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := chf.Cells[x+y*w]
			ni := int32(c.Index) + int32(c.Count)
			for i := int32(c.Index); i < ni; i++ {
				s := &chf.Spans[i]
				area := chf.Areas[i]

				nc := int32(0)
				for dir := int32(0); dir < 4; dir++ {
					if GetCon(s, dir) != RC_NOT_CONNECTED {
						ax := x + GetDirOffsetX(dir)
						ay := y + GetDirOffsetY(dir)
						ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, dir)
						if area == chf.Areas[ai] {
							nc++
						}
					}
				}
				if nc != 4 {
					src[i] = 0
				}
			}
		}
	}

	// Pass 1 (top-left to bottom-right).
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := chf.Cells[x+y*w]
			ni := int32(c.Index) + int32(c.Count)
			for i := int32(c.Index); i < ni; i++ {
				s := &chf.Spans[i]

				if GetCon(s, 0) != RC_NOT_CONNECTED {
					// (-1,0)
					ax := x + GetDirOffsetX(0)
					ay := y + GetDirOffsetY(0)
					ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, 0)
					as := &chf.Spans[ai]
					if src[ai]+2 < src[i] {
						src[i] = src[ai] + 2
					}

					// (-1,-1)
					if GetCon(as, 3) != RC_NOT_CONNECTED {
						aax := ax + GetDirOffsetX(3)
						aay := ay + GetDirOffsetY(3)
						aai := int32(chf.Cells[aax+aay*w].Index) + GetCon(as, 3)
						if src[aai]+3 < src[i] {
							src[i] = src[aai] + 3
						}
					}
				}
				if GetCon(s, 3) != RC_NOT_CONNECTED {
					// (0,-1)
					ax := x + GetDirOffsetX(3)
					ay := y + GetDirOffsetY(3)
					ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, 3)
					as := &chf.Spans[ai]
					if src[ai]+2 < src[i] {
						src[i] = src[ai] + 2
					}

					// (1,-1)
					if GetCon(as, 2) != RC_NOT_CONNECTED {
						aax := ax + GetDirOffsetX(2)
						aay := ay + GetDirOffsetY(2)
						aai := int32(chf.Cells[aax+aay*w].Index) + GetCon(as, 2)
						if src[aai]+3 < src[i] {
							src[i] = src[aai] + 3
						}
					}
				}
			}
		}
	}

	// Pass 2 (bottom-right to top-left).
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			c := chf.Cells[x+y*w]
			ni := int32(c.Index) + int32(c.Count)
			for i := int32(c.Index); i < ni; i++ {
				s := &chf.Spans[i]

				if GetCon(s, 2) != RC_NOT_CONNECTED {
					// (1,0)
					ax := x + GetDirOffsetX(2)
					ay := y + GetDirOffsetY(2)
					ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, 2)
					as := &chf.Spans[ai]
					if src[ai]+2 < src[i] {
						src[i] = src[ai] + 2
					}

					// (1,1)
					if GetCon(as, 1) != RC_NOT_CONNECTED {
						aax := ax + GetDirOffsetX(1)
						aay := ay + GetDirOffsetY(1)
						aai := int32(chf.Cells[aax+aay*w].Index) + GetCon(as, 1)
						if src[aai]+3 < src[i] {
							src[i] = src[aai] + 3
						}
					}
				}
				if GetCon(s, 1) != RC_NOT_CONNECTED {
					// (0,1)
					ax := x + GetDirOffsetX(1)
					ay := y + GetDirOffsetY(1)
					ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, 1)
					as := &chf.Spans[ai]
					if src[ai]+2 < src[i] {
						src[i] = src[ai] + 2
					}

					// (-1,1)
					if GetCon(as, 0) != RC_NOT_CONNECTED {
						aax := ax + GetDirOffsetX(0)
						aay := ay + GetDirOffsetY(0)
						aai := int32(chf.Cells[aax+aay*w].Index) + GetCon(as, 0)
						if src[aai]+3 < src[i] {
							src[i] = src[aai] + 3
						}
					}
				}
			}
		}
	}

	for i := int32(0); i < chf.SpanCount; i++ {
		if src[i] > maxDist {
			maxDist = src[i]
		}
	}

	return maxDist
}

// boxBlur smooths the distance field with a 3x3-neighborhood box filter:
// any span whose distance already falls at or below 2*thr is left alone
// (it's already close to a boundary; blurring it would only distort the
// watershed seed set there), everything else is averaged against its four
// 4-connected neighbors and the diagonal neighbor one step further in the
// next direction (falling back to the center value itself when a
// neighbor link is missing, so the filter never samples off-grid).
func boxBlur(chf *CompactHeightfield, thr int32, src, dst []uint16) []uint16 {
	w := chf.Width
	h := chf.Height

	thr *= 2

	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := chf.Cells[x+y*w]
			ni := int32(c.Index) + int32(c.Count)
			for i := int32(c.Index); i < ni; i++ {
				s := &chf.Spans[i]
				cd := src[i]
				if int32(cd) <= thr {
					dst[i] = cd
					continue
				}

				d := int32(cd)
				for dir := int32(0); dir < 4; dir++ {
					if GetCon(s, dir) != RC_NOT_CONNECTED {
						ax := x + GetDirOffsetX(dir)
						ay := y + GetDirOffsetY(dir)
						ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, dir)
						d += int32(src[ai])

						as := &chf.Spans[ai]
						dir2 := (dir + 1) & 0x3
						if GetCon(as, dir2) != RC_NOT_CONNECTED {
							ax2 := ax + GetDirOffsetX(dir2)
							ay2 := ay + GetDirOffsetY(dir2)
							ai2 := int32(chf.Cells[ax2+ay2*w].Index) + GetCon(as, dir2)
							d += int32(src[ai2])
						} else {
							d += int32(cd)
						}
					} else {
						d += int32(cd) * 2
					}
				}
				dst[i] = uint16((d + 5) / 9)
			}
		}
	}
	return dst
}

// BuildDistanceField builds chf.Dist: the chamfer distance of every span
// to the nearest area-boundary span, in two passes (calculateDistanceField
// then a box-blur smoothing pass). It must be called before BuildRegions
// (watershed partitioning) - the watershed relies on chf.Dist to descend
// from high ground to low ground one level at a time.
func BuildDistanceField(ctx *BuildContext, chf *CompactHeightfield) bool {
	assert.True(ctx != nil, "ctx should not be nil")
	ctx.StartTimer(TimerBuildDistanceField)
	defer ctx.StopTimer(TimerBuildDistanceField)

	src := make([]uint16, chf.SpanCount)
	dst := make([]uint16, chf.SpanCount)

	var maxDist uint16
	ctx.StartTimer(TimerBuildDistanceFieldDist)
	maxDist = calculateDistanceField(chf, src)
	chf.MaxDistance = maxDist
	ctx.StopTimer(TimerBuildDistanceFieldDist)

	ctx.StartTimer(TimerBuildDistanceFieldBlur)
	boxBlur(chf, 1, src, dst)
	// boxBlur always writes its result into dst; adopt it as the stored
	// field.
	chf.Dist = dst
	ctx.StopTimer(TimerBuildDistanceFieldBlur)

	return true
}
