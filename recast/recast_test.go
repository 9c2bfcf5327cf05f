package recast

import (
	"testing"

	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
)

func TestiMin(t *testing.T) {
	ttable := []struct {
		a, b, res int32
	}{
		{1, 2, 1},
		{2, 1, 1},
		{1, 1, 1},
	}

	for _, tt := range ttable {
		got := iMin(tt.a, tt.b)
		if got != tt.res {
			t.Fatalf("iMin(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.res)
		}
	}
}

func TestiMax(t *testing.T) {
	ttable := []struct {
		a, b, res int32
	}{
		{1, 2, 2},
		{2, 1, 2},
		{1, 1, 1},
	}

	for _, tt := range ttable {
		got := iMax(tt.a, tt.b)
		if got != tt.res {
			t.Fatalf("iMax(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.res)
		}
	}
}

func TestiAbs(t *testing.T) {
	ttable := []struct {
		a, res int32
	}{
		{-1, 1},
		{1, 1},
		{0, 0},
	}

	for _, tt := range ttable {
		got := iAbs(tt.a)
		if got != tt.res {
			t.Fatalf("iAbs(%v) = %v, want %v", tt.a, got, tt.res)
		}
	}
}

func TestGetSetCon(t *testing.T) {
	var s CompactSpan
	// A zero-valued CompactSpan.con is not RC_NOT_CONNECTED in every
	// direction - it's 0, same as a real "connected to neighbor index 0".
	// Callers that build spans from scratch (see compact.go) must
	// explicitly SetCon each direction to RC_NOT_CONNECTED before
	// conditionally wiring real neighbor indices.
	for dir := int32(0); dir < 4; dir++ {
		SetCon(&s, dir, RC_NOT_CONNECTED)
	}
	for dir := int32(0); dir < 4; dir++ {
		if GetCon(&s, dir) != RC_NOT_CONNECTED {
			t.Fatalf("dir %d: expected RC_NOT_CONNECTED after resetting", dir)
		}
	}

	SetCon(&s, 2, 17)
	if got := GetCon(&s, 2); got != 17 {
		t.Fatalf("GetCon(2) = %d, want 17", got)
	}
	// Other directions must be untouched.
	if GetCon(&s, 0) != RC_NOT_CONNECTED || GetCon(&s, 1) != RC_NOT_CONNECTED || GetCon(&s, 3) != RC_NOT_CONNECTED {
		t.Fatalf("SetCon(2, ...) perturbed an unrelated direction")
	}

	SetCon(&s, 2, int32(RC_NOT_CONNECTED))
	if GetCon(&s, 2) != RC_NOT_CONNECTED {
		t.Fatalf("SetCon round-trip to RC_NOT_CONNECTED failed")
	}
}

func TestGetDirOffset(t *testing.T) {
	seen := map[[2]int32]bool{}
	for dir := int32(0); dir < 4; dir++ {
		dx, dy := GetDirOffsetX(dir), GetDirOffsetY(dir)
		if iAbs(dx)+iAbs(dy) != 1 {
			t.Fatalf("dir %d: offset (%d,%d) is not a unit step", dir, dx, dy)
		}
		seen[[2]int32{dx, dy}] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 distinct unit offsets, got %d", len(seen))
	}
}

func TestCreateHeightfield(t *testing.T) {
	bmin := d3.NewVec3XYZ(0, 0, 0)
	bmax := d3.NewVec3XYZ(10, 5, 10)

	cellSize := float32(1.5)
	cellHeight := float32(2)

	w := int32((bmax[0]-bmin[0])/cellSize + 0.5)
	h := int32((bmax[2]-bmin[2])/cellSize + 0.5)

	var hf Heightfield
	result := hf.Create(nil, w, h, bmin, bmax, cellSize, cellHeight)

	if !result {
		t.Fatalf("result should be true")
	}
	if hf.Width != w {
		t.Fatalf("should have heightfield.width == width")
	}
	if hf.Height != h {
		t.Fatalf("should have heightfield.height == height")
	}

	for i := range bmin {
		if !math32.Approx(hf.BMin[i], bmin[i]) {
			t.Fatalf("hf.BMin[%d] should be approx bmin[%d], got %f and %f", i, i, hf.BMin[i], bmin[i])
		}
	}
	for i := range bmax {
		if !math32.Approx(hf.BMax[i], bmax[i]) {
			t.Fatalf("hf.BMax[%d] should be approx bmax[%d], got %f and %f", i, i, hf.BMax[i], bmax[i])
		}
	}
	if !math32.Approx(hf.Cs, cellSize) {
		t.Fatalf("hf.Cs should be approx cellSize")
	}
	if !math32.Approx(hf.Ch, cellHeight) {
		t.Fatalf("hf.Ch should be approx cellHeight")
	}
	if len(hf.Spans) == 0 {
		t.Fatalf("hf.Spans slice should not be empty")
	}
	if hf.Pools != nil {
		t.Fatalf("hf.Pools should be nil")
	}
	if hf.Freelist != nil {
		t.Fatalf("hf.Freelist should be nil")
	}
}

func TestAddSpanMerge(t *testing.T) {
	bmin := d3.NewVec3XYZ(0, 0, 0)
	bmax := d3.NewVec3XYZ(3, 3, 3)

	var hf Heightfield
	hf.Create(nil, 1, 1, bmin, bmax, 1, 1)

	hf.addSpan(0, 0, 0, 4, RC_WALKABLE_AREA, 1)
	hf.addSpan(0, 0, 3, 6, RC_WALKABLE_AREA, 1)

	s := hf.Spans[0]
	if s == nil {
		t.Fatalf("expected a span at (0,0)")
	}
	if s.next != nil {
		t.Fatalf("overlapping spans should have merged into one")
	}
	if s.smin != 0 || s.smax != 6 {
		t.Fatalf("merged span should cover [0,6), got [%d,%d)", s.smin, s.smax)
	}
}
