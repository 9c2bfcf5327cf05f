// Package recast builds navigation-mesh region data from a voxelized
// representation of a level: a sparse Heightfield of solid/walkable spans
// and, derived from it, a CompactHeightfield of walkable spans connected
// 4-directionally to their neighbors.
//
// The pipeline implemented here is:
//
//  - Filter a Heightfield to remove obstacles a walking agent could step
//    over or onto, and spans too close to a ledge or ceiling to be safely
//    traversable (FilterLowHangingWalkableObstacles, FilterLedgeSpans,
//    FilterWalkableLowHeightSpans).
//  - Optionally erode the walkable area inward from any boundary by the
//    agent's radius (ErodeWalkableArea).
//  - Build a per-span distance-to-boundary field over the compact
//    heightfield (BuildDistanceField).
//  - Partition the compact heightfield into regions, by one of three
//    strategies: watershed (BuildRegions), monotone row sweep
//    (BuildRegionsMonotone), or heightfield layering (BuildLayerRegions).
//
// Rasterizing a triangle mesh into a Heightfield, compacting a Heightfield
// into a CompactHeightfield, tracing region contours into polygons, and
// assembling/serializing navmesh tiles are all out of scope for this
// package - they are the callers' concern. Heightfield.Column and
// Heightfield.AddSpan are exported for exactly that: a caller populating a
// Heightfield (from a rasterizer or a procedural generator) and a caller
// compacting one need a way in and a way out that doesn't require reaching
// into the package's internal span type.
package recast
