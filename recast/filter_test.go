package recast

import (
	"testing"

	"github.com/arl/gogeo/f32/d3"
)

func newTestHeightfield(t *testing.T, w, h int32) *Heightfield {
	t.Helper()
	var hf Heightfield
	bmin := d3.NewVec3XYZ(0, 0, 0)
	bmax := d3.NewVec3XYZ(float32(w), 10, float32(h))
	if !hf.Create(nil, w, h, bmin, bmax, 1, 1) {
		t.Fatalf("failed to create test heightfield")
	}
	return &hf
}

func TestFilterWalkableLowHeightSpans(t *testing.T) {
	hf := newTestHeightfield(t, 1, 1)

	// Floor span [0,2), then a low ceiling span starting at 3: a 1-unit
	// gap, too small for a walkableHeight of 2.
	hf.addSpan(0, 0, 0, 2, RC_WALKABLE_AREA, 0)
	hf.addSpan(0, 0, 3, 5, RC_WALKABLE_AREA, 0)

	FilterWalkableLowHeightSpans(NewBuildContext(false), 2, hf)

	floor := hf.Spans[0]
	if floor.area != RC_NULL_AREA {
		t.Fatalf("floor span with insufficient headroom should be marked unwalkable")
	}
	ceiling := floor.next
	if ceiling.area != RC_WALKABLE_AREA {
		t.Fatalf("topmost span (no span above it) should keep its area")
	}
}

func TestFilterWalkableLowHeightSpansEnoughRoom(t *testing.T) {
	hf := newTestHeightfield(t, 1, 1)

	// 5-unit gap between floor and ceiling, plenty for walkableHeight 2.
	hf.addSpan(0, 0, 0, 2, RC_WALKABLE_AREA, 0)
	hf.addSpan(0, 0, 7, 9, RC_WALKABLE_AREA, 0)

	FilterWalkableLowHeightSpans(NewBuildContext(false), 2, hf)

	if hf.Spans[0].area != RC_WALKABLE_AREA {
		t.Fatalf("floor span with enough headroom should remain walkable")
	}
}

func TestFilterLowHangingWalkableObstacles(t *testing.T) {
	hf := newTestHeightfield(t, 1, 1)

	hf.addSpan(0, 0, 0, 2, RC_WALKABLE_AREA, 0)
	hf.addSpan(0, 0, 3, 4, RC_NULL_AREA, 0)

	FilterLowHangingWalkableObstacles(NewBuildContext(false), 2, hf)

	if hf.Spans[0].next.area != RC_WALKABLE_AREA {
		t.Fatalf("low obstacle directly atop a walkable span should become walkable")
	}
}

func TestFilterLedgeSpansMarksDrop(t *testing.T) {
	hf := newTestHeightfield(t, 2, 1)

	// (0,0) is a tall plateau, (1,0) has no spans at all: a ledge drop of
	// more than walkableClimb at the edge of the field.
	hf.addSpan(0, 0, 0, 10, RC_WALKABLE_AREA, 0)

	FilterLedgeSpans(NewBuildContext(false), 2, 1, hf)

	if hf.Spans[0].area != RC_NULL_AREA {
		t.Fatalf("span overlooking an out-of-bounds drop should be marked a ledge")
	}
}
