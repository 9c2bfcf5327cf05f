package recast

import "testing"

func TestErodeWalkableAreaShrinksBorder(t *testing.T) {
	chf := newFlatCHF(7, 7, RC_WALKABLE_AREA)

	ctx := NewBuildContext(false)
	if !ErodeWalkableArea(ctx, 1, chf) {
		t.Fatalf("ErodeWalkableArea returned false")
	}

	// Every column on the outer ring has a missing neighbor, so it's a
	// boundary cell (distance 0) and radius 1 erodes it (threshold 2*1=2).
	for x := int32(0); x < 7; x++ {
		if chf.Areas[x+0*7] != RC_NULL_AREA {
			t.Fatalf("border cell (%d,0) should have been eroded", x)
		}
		if chf.Areas[x+6*7] != RC_NULL_AREA {
			t.Fatalf("border cell (%d,6) should have been eroded", x)
		}
	}

	// The center cell (3,3) is 3 cells from any border in a 7x7 grid, well
	// beyond the erosion threshold, and should survive.
	if chf.Areas[3+3*7] != RC_WALKABLE_AREA {
		t.Fatalf("center cell should not have been eroded")
	}
}

func TestErodeWalkableAreaSkipsNullAreas(t *testing.T) {
	chf := newFlatCHF(5, 5, RC_WALKABLE_AREA)
	chf.Areas[2+2*5] = RC_NULL_AREA

	ctx := NewBuildContext(false)
	ErodeWalkableArea(ctx, 1, chf)

	if chf.Areas[2+2*5] != RC_NULL_AREA {
		t.Fatalf("an already-null area must remain null")
	}
}
