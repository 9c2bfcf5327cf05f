package recast

import "github.com/arl/gogeo/f32/d3"

// newFlatCHF builds a fully-connected w*h compact heightfield, one span per
// column, all assigned area. Every interior column is 4-connected to its
// neighbors; columns on the border are left with RC_NOT_CONNECTED in the
// directions that would step off the grid. Test fixtures can then carve out
// holes or area-type boundaries by editing Areas directly.
func newFlatCHF(w, h int32, area uint8) *CompactHeightfield {
	n := w * h
	chf := &CompactHeightfield{
		Width:          w,
		Height:         h,
		SpanCount:      n,
		WalkableHeight: 3,
		WalkableClimb:  1,
		Cs:             1,
		Ch:             1,
		BMin:           d3.NewVec3XYZ(0, 0, 0),
		BMax:           d3.NewVec3XYZ(float32(w), 10, float32(h)),
		Cells:          make([]CompactCell, n),
		Spans:          make([]CompactSpan, n),
		Areas:          make([]uint8, n),
	}

	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			i := x + y*w
			chf.Cells[i] = CompactCell{Index: uint32(i), Count: 1}
			chf.Spans[i] = CompactSpan{Y: 0, H: 10}
			chf.Areas[i] = area
		}
	}

	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			i := x + y*w
			s := &chf.Spans[i]
			for dir := int32(0); dir < 4; dir++ {
				SetCon(s, dir, RC_NOT_CONNECTED)
				ax := x + GetDirOffsetX(dir)
				ay := y + GetDirOffsetY(dir)
				if ax < 0 || ax >= w || ay < 0 || ay >= h {
					continue
				}
				SetCon(s, dir, 0)
			}
		}
	}

	return chf
}
