package recast

// 4-connected neighbor direction offsets on the xz grid. Direction 0 is
// -x, 1 is +z, 2 is +x, 3 is -z; GetDirOffsetX/Y and the contour walk
// (walkContour in region.go) rotate through these in this fixed order.
var (
	xOffset = [4]int32{-1, 0, 1, 0}
	yOffset = [4]int32{0, 1, 0, -1}
)

// SetCon sets the neighbor connection data for the specified direction.
//  s    The span to update.
//  dir  The direction to set. [Limits: 0 <= value < 4]
//  i    The index of the neighbor span.
func SetCon(s *CompactSpan, dir, i int32) {
	shift := uint32(dir * 6)
	con := s.con
	s.con = (con &^ (uint32(0x3f) << shift)) | ((uint32(i & 0x3f)) << shift)
}

// GetCon gets the neighbor connection data for the specified direction, or
// RC_NOT_CONNECTED if there is no connection.
func GetCon(s *CompactSpan, dir int32) int32 {
	shift := uint32(dir * 6)
	return int32((s.con >> shift) & 0x3f)
}

// GetDirOffsetX gets the standard width (x-axis) offset for the specified
// direction.
func GetDirOffsetX(dir int32) int32 {
	return xOffset[dir&0x03]
}

// GetDirOffsetY gets the standard height (z-axis) offset for the specified
// direction.
func GetDirOffsetY(dir int32) int32 {
	return yOffset[dir&0x03]
}

func iMin(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func iMax(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func iAbs(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}
