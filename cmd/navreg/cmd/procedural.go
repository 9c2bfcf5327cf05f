package cmd

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/navreg/recast"
)

// buildProceduralHeightfield carves a width*height walkable plateau with a
// handful of obstacles and drops, so that the region builders have more
// than one region to actually produce. There is no rasterizer in this
// module: the heightfield is built directly, span by span.
func buildProceduralHeightfield(ctx *recast.BuildContext, width, height int32, cs, ch float32) *recast.Heightfield {
	bmin := d3.NewVec3XYZ(0, 0, 0)
	bmax := d3.NewVec3XYZ(float32(width)*cs, 10, float32(height)*cs)

	hf := recast.NewHeightfield()
	hf.Create(ctx, width, height, bmin, bmax, cs, ch)

	for y := int32(0); y < height; y++ {
		for x := int32(0); x < width; x++ {
			if isObstacle(x, y, width, height) {
				continue
			}
			hf.AddSpan(x, y, 0, 2, recast.RC_WALKABLE_AREA, 1)
		}
	}

	return hf
}

// isObstacle carves a cross-shaped gap through the plateau and punches a
// couple of square holes near opposite corners, forcing the watershed/
// monotone/layer builders to produce more than a single region.
func isObstacle(x, y, width, height int32) bool {
	midX, midY := width/2, height/2
	if x == midX || y == midY {
		return true
	}
	if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
		return true
	}
	if x >= width-3 && x <= width-2 && y >= height-3 && y <= height-2 {
		return true
	}
	return false
}
