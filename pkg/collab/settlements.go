package collab

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/islandgen/worldgen/pkg/network"
	"github.com/islandgen/worldgen/pkg/worldgen"
)

// MinParcelSize is the minimum number of land sites a parcel needs before
// coastalSettlementSeeder will anchor a settlement to it.
const MinParcelSize = 2

// coastalSettlementSeeder is the default SettlementSeeder. It scores with
// the flatness term of findBestHarbor's heuristic (without its river/lake
// access term), but ranks every sufficiently large coastal parcel and seeds
// one settlement per parcel that clears MinParcelSize, anchored at its
// highest-scoring coastal member.
type coastalSettlementSeeder struct {
	Subdivider CadastralSubdivider
}

// NewCoastalSettlementSeeder builds a coastalSettlementSeeder backed by
// the given subdivider, or a default gridParcelSubdivider if nil.
func NewCoastalSettlementSeeder(sub CadastralSubdivider) SettlementSeeder {
	if sub == nil {
		sub = NewGridParcelSubdivider(DefaultMaxParcelSites)
	}
	return &coastalSettlementSeeder{Subdivider: sub}
}

func (c *coastalSettlementSeeder) Seed(snap *worldgen.Snapshot, net *network.Network) ([]Settlement, error) {
	parcels, err := c.Subdivider.Subdivide(snap)
	if err != nil {
		return nil, fmt.Errorf("subdivide for settlement seeding: %w", err)
	}

	type candidate struct {
		parcel *Parcel
		anchor int
		score  float64
	}
	var candidates []candidate
	for i := range parcels {
		p := &parcels[i]
		anchor, score, ok := bestCoastalAnchor(snap, p.Sites)
		if !ok || len(p.Sites) < MinParcelSize {
			continue
		}
		candidates = append(candidates, candidate{parcel: p, anchor: anchor, score: score})
	}

	sort.Slice(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	settlements := make([]Settlement, 0, len(candidates))
	for _, c := range candidates {
		settlements = append(settlements, Settlement{
			ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("settlement-%d", c.anchor))),
			Name:       fmt.Sprintf("Settlement-%d", len(settlements)+1),
			AnchorSite: c.anchor,
			Location:   snap.Cells[c.anchor].Centroid,
			Parcel:     c.parcel,
		})
	}
	return settlements, nil
}

// bestCoastalAnchor scores each coastal land site in sites by local
// flatness (inverse variance of neighboring FilledElevation) and returns
// the best, mirroring the harbor-scoring heuristic used for single-site
// candidate selection.
func bestCoastalAnchor(snap *worldgen.Snapshot, sites []int) (anchor int, bestScore float64, ok bool) {
	anchor = -1
	bestScore = math.Inf(-1)
	for _, i := range sites {
		s := snap.Cells[i]
		if !s.IsCoast {
			continue
		}
		var sum, sumSq float64
		n := 0
		for _, nb := range s.Neighbors {
			e := snap.Cells[nb].FilledElevation
			sum += e
			sumSq += e * e
			n++
		}
		if n == 0 {
			continue
		}
		mean := sum / float64(n)
		variance := sumSq/float64(n) - mean*mean
		if variance < 0 {
			variance = 0
		}
		score := 1 / (1 + variance)
		if score > bestScore {
			bestScore = score
			anchor = i
			ok = true
		}
	}
	return anchor, bestScore, ok
}
