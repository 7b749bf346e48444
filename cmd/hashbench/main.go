// Command hashbench CPU-profiles repeated HTable rebuilds over a
// synthetic set of AABBs spread across several size tiers.
//
// Profiling:
//
//	go build ./cmd/hashbench
//	./hashbench -n 20000 -tiers 6 -rounds 50
//	go tool pprof -http=":8000" ./cpu.pprof
package main

import (
	"flag"
	"log"

	"github.com/nullwave/spatialhash"
	"github.com/pkg/profile"
)

func main() {
	n := flag.Int("n", 20000, "number of AABBs to build the table from")
	tiers := flag.Int("tiers", 6, "number of hierarchical tiers")
	rounds := flag.Int("rounds", 50, "number of rebuild rounds to profile")
	flag.Parse()

	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(*n, *tiers, *rounds)
	p.Stop()
}

func run(n, tiers, rounds int) {
	boxes := make([]spatialhash.AABB, n)
	ids := make([]spatialhash.Id, n)
	for i := range boxes {
		boxes[i], ids[i] = syntheticBox(i)
	}

	h := spatialhash.NewHTable(2)
	if err := h.Initialize(spatialhash.Vec{1, 1}, tiers); err != nil {
		log.Fatalf("hashbench: Initialize: %v", err)
	}

	out := spatialhash.NewOverlapList()
	for r := 0; r < rounds; r++ {
		h.Build(boxes)
		out.Clear()
		h.FindOverlaps(ids, boxes, out)
	}

	log.Printf("hashbench: %d AABBs, %d tiers, %d rounds, %d cells, %d overlap groups",
		n, tiers, rounds, h.NumCells(), out.Size())
}

// syntheticBox places item i on a regular grid, 500 items per row and 2
// units apart, with an edge of 2^(i%8), producing a mix of small and large
// AABBs. Every box spans at least two base cells per axis, so items land
// in tiers 1 through 7 (clamped to the table's top tier) and tier 0 stays
// empty.
func syntheticBox(i int) (spatialhash.AABB, spatialhash.Id) {
	shifted := 1 << (i % 8)
	size := float32(shifted)
	x := float32(i%500) * 2
	y := float32(i/500) * 2
	return spatialhash.AABB{
		Min: spatialhash.Vec{x, y},
		Max: spatialhash.Vec{x + size, y + size},
	}, spatialhash.Id(i)
}
