// Package regiondemo resolves agent-shaped physical parameters into a
// recast.Config, and dispatches to one of the three region-partitioning
// strategies recast offers.
package regiondemo

import (
	"github.com/arl/math32"
	"github.com/arl/navreg/recast"
)

// PartitionType selects a heightfield region-partitioning strategy.
type PartitionType int

const (
	// PartitionWatershed uses the watershed partitioning method.
	PartitionWatershed PartitionType = iota
	// PartitionMonotone uses the monotone partitioning method.
	PartitionMonotone
	// PartitionLayers uses the layer partitioning method.
	PartitionLayers
)

func (p PartitionType) String() string {
	switch p {
	case PartitionWatershed:
		return "watershed"
	case PartitionMonotone:
		return "monotone"
	case PartitionLayers:
		return "layers"
	default:
		return "unknown"
	}
}

// Settings contains the agent and voxelization parameters required to
// resolve a recast.Config.
type Settings struct {
	// Rasterization settings.
	CellSize   float32 `yaml:"cell_size"`
	CellHeight float32 `yaml:"cell_height"`

	// Agent properties.
	AgentHeight   float32 `yaml:"agent_height"`
	AgentMaxClimb float32 `yaml:"agent_max_climb"`
	AgentRadius   float32 `yaml:"agent_radius"`

	// Region.
	RegionMinSize   int32 `yaml:"region_min_size"`
	RegionMergeSize int32 `yaml:"region_merge_size"`

	WalkableSlopeAngle float32 `yaml:"walkable_slope_angle"`
}

// NewSettings returns a Settings struct filled with reasonable defaults for
// a human-scale agent on a 0.3wu voxel grid.
func NewSettings() Settings {
	return Settings{
		CellSize:           0.3,
		CellHeight:         0.2,
		AgentHeight:        2.0,
		AgentMaxClimb:      0.9,
		AgentRadius:        0.6,
		RegionMinSize:      8,
		RegionMergeSize:    20,
		WalkableSlopeAngle: 45,
	}
}

// Resolve converts Settings, together with the grid size (width and height
// in cells), into a recast.Config.
func (s Settings) Resolve(width, height int32) recast.Config {
	var cfg recast.Config
	cfg.Width = width
	cfg.Height = height
	cfg.Cs = s.CellSize
	cfg.Ch = s.CellHeight
	cfg.WalkableSlopeAngle = s.WalkableSlopeAngle
	cfg.WalkableHeight = int32(math32.Ceil(s.AgentHeight / cfg.Ch))
	cfg.WalkableClimb = int32(math32.Floor(s.AgentMaxClimb / cfg.Ch))
	cfg.WalkableRadius = int32(math32.Ceil(s.AgentRadius / cfg.Cs))
	cfg.MinRegionArea = s.RegionMinSize * s.RegionMinSize
	cfg.MergeRegionArea = s.RegionMergeSize * s.RegionMergeSize
	return cfg
}
