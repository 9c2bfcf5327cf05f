package recast

import "github.com/arl/assertgo"

// FilterLowHangingWalkableObstacles allows the formation of walkable
// regions that will flow over low lying objects such as curbs, and up
// structures such as stairways.
//
// Two neighboring spans are walkable if:
// abs(currentSpan.smax - neighborSpan.smax) <= walkableClimb
//
// Will override the effect of FilterLedgeSpans. So if both filters are
// used, call FilterLedgeSpans after calling this filter.
func FilterLowHangingWalkableObstacles(ctx *BuildContext, walkableClimb int32, solid *Heightfield) {
	assert.True(ctx != nil, "ctx should not be nil")
	ctx.StartTimer(TimerFilterLowObstacles)
	defer ctx.StopTimer(TimerFilterLowObstacles)

	w := solid.Width
	h := solid.Height

	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			var ps *rcSpan
			previousWalkable := false
			previousArea := uint8(RC_NULL_AREA)

			for s := solid.Spans[x+y*w]; s != nil; s = s.next {
				walkable := s.area != RC_NULL_AREA
				// If the current span is not walkable, but there is a
				// walkable span just below it, mark the span above it
				// walkable too.
				if !walkable && previousWalkable {
					if iAbs(int32(s.smax)-int32(ps.smax)) <= walkableClimb {
						s.area = previousArea
					}
				}
				// Copy the walkable flag so it cannot propagate past
				// multiple non-walkable spans.
				previousWalkable = walkable
				previousArea = s.area
				ps = s
			}
		}
	}
}

// FilterLedgeSpans marks spans that are ledges as unwalkable.
//
// A span is a ledge if the floor of some neighbor (or the edge of the grid)
// lies more than walkableClimb below it, or if the floors of its accessible
// neighbors, together with its own, differ by more than walkableClimb (a
// steep slope). A neighbor floor higher than the span does not by itself
// make it a ledge. This removes the impact of the
// overestimation of conservative voxelization so the resulting regions
// will not hang in the air over ledges.
func FilterLedgeSpans(ctx *BuildContext, walkableHeight, walkableClimb int32,
	solid *Heightfield) {
	assert.True(ctx != nil, "ctx should not be nil")
	ctx.StartTimer(TimerFilterBorder)
	defer ctx.StopTimer(TimerFilterBorder)

	w := solid.Width
	h := solid.Height

	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			for s := solid.Spans[x+y*w]; s != nil; s = s.next {
				// Skip non-walkable spans.
				if s.area == RC_NULL_AREA {
					continue
				}

				bot := int32(s.smax)
				var top int32
				if s.next != nil {
					top = int32(s.next.smin)
				} else {
					top = maxSpanHeight
				}

				// Find the neighbors' minimum height.
				minh := maxSpanHeight

				// Min and max height of accessible neighbors.
				asmin := s.smax
				asmax := s.smax

				for dir := 0; dir < 4; dir++ {
					dx := x + GetDirOffsetX(int32(dir))
					dy := y + GetDirOffsetY(int32(dir))
					// Skip neighbors which are out of bounds.
					if dx < 0 || dy < 0 || dx >= w || dy >= h {
						minh = iMin(minh, -walkableClimb-bot)
						continue
					}

					// From minus infinity to the first span.
					ns := solid.Spans[dx+dy*w]
					nbot := -walkableClimb
					var ntop int32
					if ns != nil {
						ntop = int32(ns.smin)
					} else {
						ntop = maxSpanHeight
					}

					// Skip the neighbor if the gap between the spans is
					// too small.
					if iMin(top, ntop)-iMax(bot, nbot) > walkableHeight {
						minh = iMin(minh, nbot-bot)
					}

					// Rest of the spans.
					for ns = solid.Spans[dx+dy*w]; ns != nil; ns = ns.next {
						nbot = int32(ns.smax)
						if ns.next != nil {
							ntop = int32(ns.next.smin)
						} else {
							ntop = maxSpanHeight
						}
						// Skip the neighbor if the gap between the spans
						// is too small.
						if iMin(top, ntop)-iMax(bot, nbot) > walkableHeight {
							minh = iMin(minh, nbot-bot)

							// Find min/max accessible neighbor height.
							if iAbs(nbot-bot) <= walkableClimb {
								if nbot < int32(asmin) {
									asmin = uint16(nbot)
								}
								if nbot > int32(asmax) {
									asmax = uint16(nbot)
								}
							}
						}
					}
				}

				// The current span is close to a ledge if the drop to
				// any neighbor span is more than walkableClimb.
				if minh < -walkableClimb {
					s.area = RC_NULL_AREA
				} else if int32(asmax-asmin) > walkableClimb {
					// If the difference between all neighbors is too
					// large, we are on a steep slope; mark the span as a
					// ledge.
					s.area = RC_NULL_AREA
				}
			}
		}
	}
}

// FilterWalkableLowHeightSpans marks spans unwalkable if the clearance
// between them and the next span up is less than or equal to
// walkableHeight, i.e. there is not enough headroom above the floor for an
// agent to stand there.
func FilterWalkableLowHeightSpans(ctx *BuildContext, walkableHeight int32, solid *Heightfield) {
	assert.True(ctx != nil, "ctx should not be nil")
	ctx.StartTimer(TimerFilterWalkable)
	defer ctx.StopTimer(TimerFilterWalkable)

	w := solid.Width
	h := solid.Height

	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			for s := solid.Spans[x+y*w]; s != nil; s = s.next {
				bot := int32(s.smax)
				var top int32
				if s.next != nil {
					top = int32(s.next.smin)
				} else {
					top = maxSpanHeight
				}
				if (top - bot) <= walkableHeight {
					s.area = RC_NULL_AREA
				}
			}
		}
	}
}
