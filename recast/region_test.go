package recast

import "testing"

func regionAssignment(t *testing.T, chf *CompactHeightfield) map[uint16]int {
	t.Helper()
	counts := map[uint16]int{}
	for i := int32(0); i < chf.SpanCount; i++ {
		counts[chf.Spans[i].Reg]++
	}
	return counts
}

func TestBuildRegionsMonotoneFlat(t *testing.T) {
	chf := newFlatCHF(10, 10, RC_WALKABLE_AREA)
	ctx := NewBuildContext(false)

	if !BuildDistanceField(ctx, chf) {
		t.Fatalf("BuildDistanceField failed")
	}
	if !BuildRegionsMonotone(ctx, chf, 0, 0, 0) {
		t.Fatalf("BuildRegionsMonotone failed")
	}

	counts := regionAssignment(t, chf)
	if len(counts) < 1 {
		t.Fatalf("expected at least one region to be assigned")
	}
	for i := int32(0); i < chf.SpanCount; i++ {
		if chf.Spans[i].Reg == 0 {
			t.Fatalf("flat fully-connected field should leave no span unregioned, span %d", i)
		}
	}
}

func TestBuildRegionsWatershedFlat(t *testing.T) {
	chf := newFlatCHF(12, 12, RC_WALKABLE_AREA)
	ctx := NewBuildContext(false)

	if !BuildDistanceField(ctx, chf) {
		t.Fatalf("BuildDistanceField failed")
	}
	if !BuildRegions(ctx, chf, 0, 0, 0) {
		t.Fatalf("BuildRegions failed")
	}

	counts := regionAssignment(t, chf)
	if len(counts) < 1 {
		t.Fatalf("expected at least one region to be assigned")
	}
}

func TestBuildRegionsMinAreaDiscardsSmallIslands(t *testing.T) {
	chf := newFlatCHF(12, 12, RC_WALKABLE_AREA)

	// Disconnect a single-span island in a corner by nulling out its
	// connections, and its neighbors' connections back to it.
	island := int32(0)
	SetCon(&chf.Spans[island], 0, notConnected)
	SetCon(&chf.Spans[island], 1, notConnected)
	SetCon(&chf.Spans[island], 2, notConnected)
	SetCon(&chf.Spans[island], 3, notConnected)
	SetCon(&chf.Spans[1], 0, notConnected)
	SetCon(&chf.Spans[12], 3, notConnected)

	ctx := NewBuildContext(false)
	BuildDistanceField(ctx, chf)
	if !BuildRegionsMonotone(ctx, chf, 0, 4, 0) {
		t.Fatalf("BuildRegionsMonotone failed")
	}

	if chf.Spans[island].Reg != 0 {
		t.Fatalf("a 1-span island below minRegionArea should be discarded to region 0")
	}
}

func TestBuildLayerRegionsFlat(t *testing.T) {
	chf := newFlatCHF(8, 8, RC_WALKABLE_AREA)

	ctx := NewBuildContext(false)
	if !BuildLayerRegions(ctx, chf, 0, 0) {
		t.Fatalf("BuildLayerRegions failed")
	}

	counts := regionAssignment(t, chf)
	if len(counts) == 0 {
		t.Fatalf("expected BuildLayerRegions to assign at least one region")
	}
	for i := int32(0); i < chf.SpanCount; i++ {
		if chf.Spans[i].Reg == 0 {
			t.Fatalf("flat fully-connected field should leave no span unregioned, span %d", i)
		}
	}
}

func TestBuildLayerRegionsMinAreaDiscardsSmallIslands(t *testing.T) {
	chf := newFlatCHF(10, 10, RC_WALKABLE_AREA)

	island := int32(0)
	SetCon(&chf.Spans[island], 0, notConnected)
	SetCon(&chf.Spans[island], 1, notConnected)
	SetCon(&chf.Spans[island], 2, notConnected)
	SetCon(&chf.Spans[island], 3, notConnected)
	SetCon(&chf.Spans[1], 0, notConnected)
	SetCon(&chf.Spans[10], 3, notConnected)

	ctx := NewBuildContext(false)
	if !BuildLayerRegions(ctx, chf, 0, 4) {
		t.Fatalf("BuildLayerRegions failed")
	}

	if chf.Spans[island].Reg != 0 {
		t.Fatalf("a 1-span island below minRegionArea should be discarded to region 0")
	}
}
