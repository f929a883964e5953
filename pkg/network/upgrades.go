package network

// RecordUsage adds amount to every edge in edgeIDs and every unique
// crossing those edges carry, in preparation for a later ProcessUpgrades
// pass.
func (n *Network) RecordUsage(edgeIDs []int, amount float64) {
	seen := map[int]bool{}
	for _, eid := range edgeIDs {
		e := &n.Edges[eid]
		e.Usage += amount
		for _, cid := range e.Crossings {
			if seen[cid] {
				continue
			}
			seen[cid] = true
			n.Crossings[cid].Usage += amount
		}
	}
}

// ProcessUpgrades scans every edge and crossing, advancing class/status
// one step per scan where usage has crossed the relevant threshold, and
// recomputing CurrentCost for anything that changed. Scans repeat until
// nothing changes, so an edge whose usage clears several thresholds moves
// through every reached class in one call (one record per step). It is
// idempotent: calling it again immediately afterward, with no intervening
// RecordUsage, produces an empty result.
func (n *Network) ProcessUpgrades(cfg Config) []UpgradeRecord {
	var records []UpgradeRecord

	for i := range n.Edges {
		e := &n.Edges[i]
		from := e.Class
		switch e.Class {
		case ClassNone:
			if e.Usage >= cfg.TrailThreshold {
				e.Class = ClassTrail
			}
		case ClassTrail:
			if e.Usage >= cfg.RoadThreshold {
				e.Class = ClassRoad
			}
		case ClassRoad:
			if e.Usage >= cfg.TurnpikeThreshold {
				e.Class = ClassTurnpike
			}
		}
		if e.Class != from {
			e.CurrentCost = recomputeCost(n, e, cfg)
			records = append(records, UpgradeRecord{
				EdgeID:      e.ID,
				Kind:        "class",
				From:        from.String(),
				To:          e.Class.String(),
				CurrentCost: e.CurrentCost,
			})
		}
	}

	for i := range n.Crossings {
		c := &n.Crossings[i]
		from := c.Status
		switch c.Status {
		case StatusFord:
			if c.Usage >= cfg.TrailThreshold {
				c.Status = StatusFerry
			}
		case StatusFerry:
			if c.Usage >= cfg.BridgeThreshold && c.RiverWidth <= cfg.MaxBridgeWidth {
				c.Status = StatusBridge
			}
		}
		if c.Status != from {
			e := &n.Edges[c.EdgeID]
			e.CurrentCost = recomputeCost(n, e, cfg)
			records = append(records, UpgradeRecord{
				EdgeID:      e.ID,
				Kind:        "crossing",
				CrossingID:  c.ID,
				From:        from.String(),
				To:          c.Status.String(),
				CurrentCost: e.CurrentCost,
			})
		}
	}

	if len(records) > 0 {
		records = append(records, n.ProcessUpgrades(cfg)...)
	}
	return records
}
