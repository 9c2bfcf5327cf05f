package recast

// Represents the null area.
// When a data element is given this value it is considered to no longer be
// assigned to a usable area.  (E.g. It is unwalkable.)
const RC_NULL_AREA uint8 = 0

// The default area id used to indicate a walkable voxel.
// This is also the maximum allowed area id, and the only non-null area id
// recognized by some steps in the build process.
const RC_WALKABLE_AREA uint8 = 63

// The value returned by GetCon if the specified direction is not connected
// to another span. (Has no neighbor.)
const RC_NOT_CONNECTED int32 = 0x3f

// nullArea/notConnected/borderReg are the unexported names region.go and
// region_layer.go use internally; kept distinct from the exported RC_* constants so
// the algorithm bodies read the way the original C++ does (rcNullArea,
// RC_NOT_CONNECTED composed with the border-region high bit).
const nullArea = RC_NULL_AREA
const notConnected = RC_NOT_CONNECTED

// borderReg is applied to a region id to flag it as one of the four
// border regions painted around the heightfield when BorderSize > 0.
// A region id with this bit set is never merged, never filtered for size,
// and never walked for a contour - it exists only to seed the watershed
// and monotone sweeps away from the tile edge.
const borderReg uint16 = 0x8000

// RC_NULL_NEI is returned by the monotone sweep when a sweep span borders
// more than one distinct region on its -y side, meaning no single
// unambiguous neighbor id exists to reuse.
const RC_NULL_NEI uint16 = 0xffff

// maxSpanHeight is used as a sentinel "no span above" ceiling value by the
// heightfield filters (mirrors the C++ literal 0xffff, equal to
// RC_SPAN_MAX_HEIGHT).
const maxSpanHeight int32 = 0xffff
