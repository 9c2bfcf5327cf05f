package regiondemo

import "github.com/arl/navreg/recast"

// BuildRegions partitions chf using the strategy named by partitionType,
// a thin dispatch over recast's three region builders.
//
// Watershed partitioning requires the distance field to have been built
// first (recast.BuildDistanceField); monotone and layer partitioning do
// not use it.
func BuildRegions(ctx *recast.BuildContext, chf *recast.CompactHeightfield,
	partitionType PartitionType, cfg recast.Config) bool {

	switch partitionType {
	case PartitionWatershed:
		if !recast.BuildDistanceField(ctx, chf) {
			ctx.Errorf("regiondemo: could not build distance field")
			return false
		}
		if !recast.BuildRegions(ctx, chf, cfg.BorderSize, cfg.MinRegionArea, cfg.MergeRegionArea) {
			ctx.Errorf("regiondemo: could not build watershed regions")
			return false
		}
	case PartitionMonotone:
		if !recast.BuildRegionsMonotone(ctx, chf, cfg.BorderSize, cfg.MinRegionArea, cfg.MergeRegionArea) {
			ctx.Errorf("regiondemo: could not build monotone regions")
			return false
		}
	case PartitionLayers:
		if !recast.BuildLayerRegions(ctx, chf, cfg.BorderSize, cfg.MinRegionArea) {
			ctx.Errorf("regiondemo: could not build layer regions")
			return false
		}
	default:
		ctx.Errorf("regiondemo: unknown partition type %v", partitionType)
		return false
	}
	return true
}
