// Command magicgen searches for collision-free magic factors for the
// sliding-piece hash tables. The factors baked into the bitboard
// package came from a search like this one; rerunning it is only
// needed when changing the table layout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/bits"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ross39/scalachess/bitboard"
)

func main() {
	var (
		kind  = flag.String("kind", "rook", "piece kind to search factors for: rook or bishop")
		seed  = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		tries = flag.Int("tries", 100_000_000, "candidate factors to try per square")
	)
	flag.Parse()

	var shift int
	switch *kind {
	case "rook":
		shift = 12
	case "bishop":
		shift = 9
	default:
		log.Fatalf("unknown kind %q", *kind)
	}

	log.Printf("searching %s factors, shift %v, seed %v", *kind, shift, *seed)
	var started = time.Now()

	var factors [64]uint64
	var g, _ = errgroup.WithContext(context.Background())
	for sq := 0; sq < 64; sq++ {
		var sq = sq
		var rnd = rand.New(rand.NewSource(*seed + int64(sq)))
		g.Go(func() error {
			var factor, err = findFactor(sq, *kind == "rook", shift, rnd, *tries)
			if err != nil {
				return err
			}
			factors[sq] = factor
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	log.Printf("search finished in %v", time.Since(started))
	fmt.Printf("var %sFactors = [64]uint64{\n", *kind)
	for sq := 0; sq < 64; sq += 4 {
		fmt.Printf("\t%#016x, %#016x, %#016x, %#016x,\n",
			factors[sq], factors[sq+1], factors[sq+2], factors[sq+3])
	}
	fmt.Println("}")
}

// findFactor tries sparse random candidates until one hashes every
// subset of the square's relevant mask without a conflicting collision
// within a slice of 1<<shift entries.
func findFactor(sq int, rook bool, shift int, rnd *rand.Rand, tries int) (uint64, error) {
	var mask bitboard.Bitboard
	var slow func(int, bitboard.Bitboard) bitboard.Bitboard
	if rook {
		mask, slow = bitboard.RookMask(sq), bitboard.SlowRookAttacks
	} else {
		mask, slow = bitboard.BishopMask(sq), bitboard.SlowBishopAttacks
	}

	var occupancies, references []bitboard.Bitboard
	for subset := bitboard.Bitboard(0); ; {
		occupancies = append(occupancies, subset)
		references = append(references, slow(sq, subset))
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}

	var store = make([]bitboard.Bitboard, 1<<shift)
	for t := 0; t < tries; t++ {
		// Sparse candidates succeed far more often than uniform ones.
		var factor = rnd.Uint64() & rnd.Uint64() & rnd.Uint64()
		if bits.OnesCount64((uint64(mask)*factor)&0xFF00000000000000) < 6 {
			continue
		}
		for i := range store {
			store[i] = 0
		}
		var ok = true
		for i, occ := range occupancies {
			var idx = (uint64(occ) * factor) >> (64 - shift)
			if store[idx] != 0 && store[idx] != references[i] {
				ok = false
				break
			}
			store[idx] = references[i]
		}
		if ok {
			return factor, nil
		}
	}
	return 0, fmt.Errorf("no factor found for %s after %v tries", bitboard.SquareName(sq), tries)
}
