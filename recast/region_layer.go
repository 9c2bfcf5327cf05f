package recast

import "github.com/arl/assertgo"

// addUniqueConnection appends n to reg's connection list unless it is
// already present.
func addUniqueConnection(reg *Region, n int32) {
	for i := 0; i < len(reg.Connections); i++ {
		if reg.Connections[i] == n {
			return
		}
	}
	reg.Connections = append(reg.Connections, n)
}

// mergeAndFilterLayerRegions absorbs the monotone-sweep row regions built
// by BuildLayerRegions into vertically-stacked "floor" groups: two regions
// that ever share a grid column (one column, multiple regions - a floor
// over a ceiling over another floor) are recorded as each other's Floors
// and are never merged together, since merging them would connect spans at
// different heights through a column that has no vertical link between
// them. Everything else reachable through Connections collapses into one
// layer id via a BFS flood from each still-unvisited region, after which
// layers smaller than minRegionArea (and not touching a tile border) are
// discarded and surviving ids are compacted to 1..N.
func mergeAndFilterLayerRegions(ctx *BuildContext, minRegionArea int32,
	maxRegionID *uint16, chf *CompactHeightfield, srcReg []uint16) bool {

	w := chf.Width
	h := chf.Height

	nreg := (*maxRegionID) + 1
	regions := make([]*Region, nreg)
	for i := range regions {
		regions[i] = newRegion(i)
	}

	// Find region neighbors and overlapping (same-column) regions.
	var lregs []int32
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			c := &chf.Cells[x+y*w]

			lregs = lregs[:0]

			i := int32(c.Index)
			for ni := int32(c.Index) + int32(c.Count); i < ni; i++ {
				s := &chf.Spans[i]
				ri := srcReg[i]
				if ri == 0 || ri >= nreg {
					continue
				}
				reg := regions[ri]

				reg.SpanCount++
				if s.Y < reg.YMin {
					reg.YMin = s.Y
				}
				if s.Y > reg.YMax {
					reg.YMax = s.Y
				}

				// Collect all region layers sharing this column.
				lregs = append(lregs, int32(ri))

				// Update neighbors.
				for dir := int32(0); dir < 4; dir++ {
					if GetCon(s, dir) != notConnected {
						ax := x + GetDirOffsetX(dir)
						ay := y + GetDirOffsetY(dir)
						ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, dir)
						rai := srcReg[ai]
						if rai > 0 && rai < nreg && rai != ri {
							addUniqueConnection(reg, int32(rai))
						}
						if (rai & borderReg) != 0 {
							reg.ConnectsToBorder = true
						}
					}
				}
			}

			// Update overlapping (same-column) regions.
			for i := 0; i < len(lregs)-1; i++ {
				for j := i + 1; j < len(lregs); j++ {
					if lregs[i] != lregs[j] {
						ri := regions[lregs[i]]
						rj := regions[lregs[j]]
						ri.addUniqueFloorRegion(lregs[j])
						rj.addUniqueFloorRegion(lregs[i])
					}
				}
			}
		}
	}

	// Create 2D layers from regions.
	layerID := uint16(1)

	for i := range regions {
		regions[i].ID = 0
	}

	// Merge monotone regions into non-overlapping layers.
	var stack []int32
	for i := 1; i < int(nreg); i++ {
		root := regions[i]
		// Skip already-visited.
		if root.ID != 0 {
			continue
		}

		root.ID = layerID

		stack = stack[:0]
		stack = append(stack, int32(i))

		for len(stack) > 0 {
			// Pop front.
			ri := stack[0]
			stack = stack[1:]
			reg := regions[ri]

			for _, nei := range reg.Connections {
				regn := regions[nei]
				// Skip already-visited.
				if regn.ID != 0 {
					continue
				}
				// Skip if the neighbor overlaps the root region (shares
				// a column with it - merging would splice two floors).
				overlap := false
				for _, f := range root.Floors {
					if f == nei {
						overlap = true
						break
					}
				}
				if overlap {
					continue
				}

				// Deepen.
				stack = append(stack, nei)

				// Mark layer id and merge the neighbor's layers into root.
				regn.ID = layerID
				for _, f := range regn.Floors {
					root.addUniqueFloorRegion(f)
				}
				if regn.YMin < root.YMin {
					root.YMin = regn.YMin
				}
				if regn.YMax > root.YMax {
					root.YMax = regn.YMax
				}
				root.SpanCount += regn.SpanCount
				regn.SpanCount = 0
				root.ConnectsToBorder = root.ConnectsToBorder || regn.ConnectsToBorder
			}
		}

		layerID++
	}

	// Remove small layers that don't touch a tile border.
	for i := range regions {
		if regions[i].SpanCount > 0 && regions[i].SpanCount < minRegionArea && !regions[i].ConnectsToBorder {
			reg := regions[i].ID
			for j := range regions {
				if regions[j].ID == reg {
					regions[j].ID = 0
				}
			}
		}
	}

	// Compress region ids.
	for i := range regions {
		regions[i].Remap = false
		if regions[i].ID == 0 {
			continue // Skip nil regions.
		}
		if (regions[i].ID & borderReg) != 0 {
			continue // Skip external regions.
		}
		regions[i].Remap = true
	}

	var regIDGen uint16
	for i := range regions {
		if !regions[i].Remap {
			continue
		}
		oldID := regions[i].ID
		regIDGen++
		newID := regIDGen
		for j := i; j < len(regions); j++ {
			if regions[j].ID == oldID {
				regions[j].ID = newID
				regions[j].Remap = false
			}
		}
	}
	*maxRegionID = regIDGen

	// Remap regions.
	for i := int32(0); i < chf.SpanCount; i++ {
		if (srcReg[i] & borderReg) == 0 {
			srcReg[i] = regions[srcReg[i]].ID
		}
	}

	return true
}

// BuildLayerRegions partitions the compact heightfield the same way
// BuildRegionsMonotone does - a row-major sweep producing one region per
// monotone run - but then merges those row regions into 2D layers instead
// of the size-based adjacency merge BuildRegionsMonotone performs: regions
// that share a grid column (stacked floors) are kept distinct and recorded
// against each other as Floors, while everything else reachable through
// region connections collapses into a single layer id. This produces
// regions suited to heightfield-layer tiling, where more than one walkable
// floor can occupy the same (x, z) column.
//
// The distance field is not required (and not used) by this partitioning
// strategy, unlike BuildRegions.
func BuildLayerRegions(ctx *BuildContext, chf *CompactHeightfield,
	borderSize, minRegionArea int32) bool {
	assert.True(ctx != nil, "ctx should not be nil")

	ctx.StartTimer(TimerBuildLayerRegions)
	defer ctx.StopTimer(TimerBuildLayerRegions)

	w := chf.Width
	h := chf.Height
	id := uint16(1)

	srcReg := make([]uint16, chf.SpanCount)
	nsweeps := iMax(chf.Width, chf.Height)
	sweeps := make([]sweepSpan, nsweeps)

	// Mark border regions.
	if borderSize > 0 {
		bw := iMin(w, borderSize)
		bh := iMin(h, borderSize)
		paintRectRegion(0, bw, 0, h, id|borderReg, chf, srcReg)
		id++
		paintRectRegion(w-bw, w, 0, h, id|borderReg, chf, srcReg)
		id++
		paintRectRegion(0, w, 0, bh, id|borderReg, chf, srcReg)
		id++
		paintRectRegion(0, w, h-bh, h, id|borderReg, chf, srcReg)
		id++
	}
	chf.BorderSize = borderSize

	prev := make([]int32, 256)

	// Sweep one line at a time.
	for y := borderSize; y < h-borderSize; y++ {
		prev = make([]int32, id+1)
		rid := uint16(1)

		for x := borderSize; x < w-borderSize; x++ {
			c := &chf.Cells[x+y*w]

			i := int32(c.Index)
			for ni := int32(c.Index) + int32(c.Count); i < ni; i++ {
				if chf.Areas[i] == nullArea {
					continue
				}
				s := &chf.Spans[i]

				// -x
				previd := uint16(0)
				if GetCon(s, 0) != notConnected {
					ax := x + GetDirOffsetX(0)
					ay := y + GetDirOffsetY(0)
					ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, 0)
					if (srcReg[ai]&borderReg) == 0 && chf.Areas[i] == chf.Areas[ai] {
						previd = srcReg[ai]
					}
				}

				if previd == 0 {
					previd = rid
					rid++
					sweeps[previd].rid = previd
					sweeps[previd].ns = 0
					sweeps[previd].nei = 0
				}

				// -y
				if GetCon(s, 3) != notConnected {
					ax := x + GetDirOffsetX(3)
					ay := y + GetDirOffsetY(3)
					ai := int32(chf.Cells[ax+ay*w].Index) + GetCon(s, 3)
					if srcReg[ai] != 0 && (srcReg[ai]&borderReg) == 0 && chf.Areas[i] == chf.Areas[ai] {
						nr := srcReg[ai]
						if sweeps[previd].nei == 0 || sweeps[previd].nei == nr {
							sweeps[previd].nei = nr
							sweeps[previd].ns++
							prev[nr]++
						} else {
							sweeps[previd].nei = RC_NULL_NEI
						}
					}
				}

				srcReg[i] = previd
			}
		}

		// Create unique ID.
		for i := uint16(1); i < rid; i++ {
			if sweeps[i].nei != RC_NULL_NEI && sweeps[i].nei != 0 && prev[sweeps[i].nei] == int32(sweeps[i].ns) {
				sweeps[i].id = sweeps[i].nei
			} else {
				sweeps[i].id = id
				id++
			}
		}

		// Remap IDs.
		for x := borderSize; x < w-borderSize; x++ {
			c := &chf.Cells[x+y*w]
			i := int32(c.Index)
			for ni := int32(c.Index) + int32(c.Count); i < ni; i++ {
				if srcReg[i] > 0 && srcReg[i] < rid {
					srcReg[i] = sweeps[srcReg[i]].id
				}
			}
		}
	}

	// Merge monotone regions to layers and remove small regions.
	chf.MaxRegions = id
	if !mergeAndFilterLayerRegions(ctx, minRegionArea, &chf.MaxRegions, chf, srcReg) {
		return false
	}

	// Store the result out.
	for i := int32(0); i < chf.SpanCount; i++ {
		chf.Spans[i].Reg = srcReg[i]
	}

	return true
}
