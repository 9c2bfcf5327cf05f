package recast

import "testing"

func TestBuildDistanceFieldFlat(t *testing.T) {
	chf := newFlatCHF(9, 9, RC_WALKABLE_AREA)

	ctx := NewBuildContext(false)
	if !BuildDistanceField(ctx, chf) {
		t.Fatalf("BuildDistanceField returned false")
	}

	if len(chf.Dist) != int(chf.SpanCount) {
		t.Fatalf("chf.Dist should have SpanCount entries")
	}
	if chf.MaxDistance == 0 {
		t.Fatalf("a 9x9 flat field should have spans far from any boundary")
	}

	// Border columns (missing a neighbor) are boundary cells: distance 0.
	if chf.Dist[0] != 0 {
		t.Fatalf("corner cell should be a boundary cell with distance 0, got %d", chf.Dist[0])
	}

	// The center cell should have the largest (or near-largest) distance.
	center := chf.Dist[4+4*9]
	if center == 0 {
		t.Fatalf("center cell of a 9x9 flat field should not be a boundary cell")
	}
}

func TestBuildDistanceFieldAreaBoundary(t *testing.T) {
	chf := newFlatCHF(5, 5, RC_WALKABLE_AREA)
	// Carve a differently-typed area in the middle column: a boundary any
	// non-matching neighbor should be detected across.
	chf.Areas[2+2*5] = RC_WALKABLE_AREA + 1

	ctx := NewBuildContext(false)
	BuildDistanceField(ctx, chf)

	if chf.Dist[2+2*5] != 0 {
		t.Fatalf("span adjacent to a differing area type should be a boundary cell")
	}
	if chf.Dist[1+2*5] != 0 {
		t.Fatalf("neighbor of the area-boundary span should also be marked boundary")
	}
}
