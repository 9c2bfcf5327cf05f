package recast

import "github.com/arl/gogeo/f32/d3"

// Defines the number of bits allocated to rcSpan.smin and rcSpan.smax.
const (
	RC_SPAN_HEIGHT_BITS uint = 16
	// RC_SPAN_MAX_HEIGHT is the maximum value for rcSpan.smin and rcSpan.smax.
	RC_SPAN_MAX_HEIGHT int32 = (1 << RC_SPAN_HEIGHT_BITS) - 1
	// RC_SPANS_PER_POOL is the number of spans allocated per span pool.
	RC_SPANS_PER_POOL int32 = 2048
)

// rcSpan represents a span in a (sparse) heightfield: a vertical run of
// solid or walkable voxels in one grid column.
type rcSpan struct {
	smin uint16  // The lower limit of the span. [Limit: < smax]
	smax uint16  // The upper limit of the span. [Limit: <= RC_SPAN_MAX_HEIGHT]
	area uint8   // The area id assigned to the span.
	next *rcSpan // The next span higher up in the column.
}

// rcSpanPool is a memory pool used for quick allocation of spans within a
// heightfield.
type rcSpanPool struct {
	next  *rcSpanPool
	items [RC_SPANS_PER_POOL]rcSpan
}

// Heightfield is a dynamic heightfield representing obstructed space: one
// linked list of spans per grid column.
type Heightfield struct {
	Width    int32      // The width of the heightfield. (Along the x-axis in cell units.)
	Height   int32      // The height of the heightfield. (Along the z-axis in cell units.)
	BMin     d3.Vec3    // The minimum bounds in world space. [(x, y, z)]
	BMax     d3.Vec3    // The maximum bounds in world space. [(x, y, z)]
	Cs       float32    // The size of each cell. (On the xz-plane.)
	Ch       float32    // The height of each cell. (The minimum increment along the y-axis.)
	Spans    []*rcSpan  // Heightfield of spans (width*height).
	Pools    *rcSpanPool // Linked list of span pools.
	Freelist *rcSpan    // The next free span.
}

// NewHeightfield returns a zero-value Heightfield ready for Create.
func NewHeightfield() *Heightfield {
	return &Heightfield{}
}

// Create allocates the column array for a width*height heightfield over the
// given world-space bounds and voxel sizes. See Config for parameter units.
func (hf *Heightfield) Create(ctx *BuildContext, width, height int32,
	bmin, bmax d3.Vec3, cs, ch float32) bool {
	hf.Width = width
	hf.Height = height
	hf.BMin = d3.NewVec3From(bmin)
	hf.BMax = d3.NewVec3From(bmax)
	hf.Cs = cs
	hf.Ch = ch
	hf.Spans = make([]*rcSpan, hf.Width*hf.Height)
	if len(hf.Spans) == 0 {
		return false
	}
	return true
}

func (hf *Heightfield) allocSpan() *rcSpan {
	// If running out of memory, allocate a new page and update the freelist.
	if hf.Freelist == nil || hf.Freelist.next == nil {
		pool := &rcSpanPool{}
		pool.next = hf.Pools
		hf.Pools = pool

		// Add the new items to the free list, tail-to-head.
		freelist := hf.Freelist
		var it *rcSpan
		for i := len(pool.items) - 1; i >= 0; i-- {
			it = &pool.items[i]
			it.next = freelist
			freelist = it
		}
		hf.Freelist = it
	}

	// Pop the item from the front of the free list.
	it := hf.Freelist
	hf.Freelist = hf.Freelist.next
	return it
}

// SpanInfo is a read-only snapshot of one span in a Heightfield column, for
// use by external collaborators (such as a compaction step) that need to
// read span data without reaching into the package's internal span type.
type SpanInfo struct {
	Smin, Smax uint16
	Area       uint8
}

// Column returns the spans of column (x, y), ordered bottom to top.
func (hf *Heightfield) Column(x, y int32) []SpanInfo {
	var out []SpanInfo
	for s := hf.Spans[x+y*hf.Width]; s != nil; s = s.next {
		out = append(out, SpanInfo{Smin: s.smin, Smax: s.smax, Area: s.area})
	}
	return out
}

func (hf *Heightfield) freeSpan(ptr *rcSpan) {
	if ptr == nil {
		return
	}
	ptr.next = hf.Freelist
	hf.Freelist = ptr
}

// AddSpan inserts a span into column (x, y), merging it with any touching or
// overlapping span already present there. This is the entry point an
// external collaborator (a rasterizer, or a procedural heightfield
// generator) uses to populate a Heightfield directly; the recast package
// itself never calls it outside of tests.
func (hf *Heightfield) AddSpan(x, y int32, smin, smax uint16, area uint8, flagMergeThr int32) bool {
	return hf.addSpan(x, y, smin, smax, area, flagMergeThr)
}

// addSpan inserts a span into column (x, y), merging it with any
// overlapping or touching spans already in that column.
func (hf *Heightfield) addSpan(x, y int32, smin, smax uint16,
	area uint8, flagMergeThr int32) bool {

	idx := x + y*hf.Width
	s := hf.allocSpan()
	if s == nil {
		return false
	}
	s.smin = smin
	s.smax = smax
	s.area = area
	s.next = nil

	// Empty cell, add the first span.
	if hf.Spans[idx] == nil {
		hf.Spans[idx] = s
		return true
	}
	var prev *rcSpan
	cur := hf.Spans[idx]

	// Insert and merge spans.
	for cur != nil {
		if cur.smin > s.smax {
			// Current span is further than the new span, break.
			break
		} else if cur.smax < s.smin {
			// Current span is before the new span, advance.
			prev = cur
			cur = cur.next
		} else {
			// Merge spans.
			if cur.smin < s.smin {
				s.smin = cur.smin
			}
			if cur.smax > s.smax {
				s.smax = cur.smax
			}

			// Merge flags.
			mergeFlags := int32(s.smax) - int32(cur.smax)
			if mergeFlags < 0 {
				mergeFlags = -mergeFlags
			}
			if mergeFlags <= flagMergeThr {
				if cur.area > s.area {
					s.area = cur.area
				}
			}

			// Remove current span.
			next := cur.next
			hf.freeSpan(cur)
			if prev != nil {
				prev.next = next
			} else {
				hf.Spans[idx] = next
			}
			cur = next
		}
	}

	// Insert new span.
	if prev != nil {
		s.next = prev.next
		prev.next = s
	} else {
		s.next = hf.Spans[idx]
		hf.Spans[idx] = s
	}

	return true
}

// CompactCell points at the run of CompactSpans belonging to one grid
// column of a CompactHeightfield.
type CompactCell struct {
	Index uint32 // Index to the first span in the column.
	Count uint8  // Number of spans in the column.
}

// CompactSpan represents a span of unobstructed (walkable) space within a
// CompactHeightfield.
type CompactSpan struct {
	Y   uint16 // The lower extent of the span. (Measured from the heightfield's base.)
	Reg uint16 // The id of the region the span belongs to. (Or zero if not in a region.)
	con uint32 // Packed neighbor connection data, 6 bits per direction.
	H   uint8  // The height of the span. (Measured from Y.)
}

// CompactHeightfield is a compact, static heightfield representing
// unobstructed space: a flat array of spans addressed by (x,y) cell, with
// 4-directional neighbor connections packed into each span.
type CompactHeightfield struct {
	Width          int32         // The width of the heightfield. (Along the x-axis in cell units.)
	Height         int32         // The height of the heightfield. (Along the z-axis in cell units.)
	SpanCount      int32         // The number of spans in the heightfield.
	WalkableHeight int32         // The walkable height used during the build of the field.
	WalkableClimb  int32         // The walkable climb used during the build of the field.
	BorderSize     int32         // The AABB border size used during the build of the field.
	MaxDistance    uint16        // The maximum distance value of any span within the field.
	MaxRegions     uint16        // The maximum region id of any span within the field.
	BMin           d3.Vec3       // The minimum bounds in world space. [(x, y, z)]
	BMax           d3.Vec3       // The maximum bounds in world space. [(x, y, z)]
	Cs             float32       // The size of each cell. (On the xz-plane.)
	Ch             float32       // The height of each cell. (The minimum increment along the y-axis.)
	Cells          []CompactCell // Array of cells. [Size: Width*Height]
	Spans          []CompactSpan // Array of spans. [Size: SpanCount]
	Dist           []uint16      // Array containing border distance data. [Size: SpanCount]
	Areas          []uint8       // Array containing area id data. [Size: SpanCount]
}
