package regiondemo

import "testing"

func TestResolveDefaults(t *testing.T) {
	s := NewSettings()
	cfg := s.Resolve(100, 100)

	if cfg.Width != 100 || cfg.Height != 100 {
		t.Fatalf("Resolve should carry through the requested grid size")
	}
	if cfg.WalkableHeight <= 0 {
		t.Fatalf("WalkableHeight should be a positive voxel count, got %d", cfg.WalkableHeight)
	}
	if cfg.WalkableClimb <= 0 {
		t.Fatalf("WalkableClimb should be a positive voxel count, got %d", cfg.WalkableClimb)
	}
	if cfg.WalkableRadius <= 0 {
		t.Fatalf("WalkableRadius should be a positive voxel count, got %d", cfg.WalkableRadius)
	}
	if cfg.MinRegionArea != s.RegionMinSize*s.RegionMinSize {
		t.Fatalf("MinRegionArea should be RegionMinSize squared")
	}
	if cfg.MergeRegionArea != s.RegionMergeSize*s.RegionMergeSize {
		t.Fatalf("MergeRegionArea should be RegionMergeSize squared")
	}
}

func TestPartitionTypeString(t *testing.T) {
	cases := map[PartitionType]string{
		PartitionWatershed: "watershed",
		PartitionMonotone:  "monotone",
		PartitionLayers:    "layers",
	}
	for pt, want := range cases {
		if got := pt.String(); got != want {
			t.Fatalf("PartitionType(%d).String() = %q, want %q", pt, got, want)
		}
	}
}
