package bitboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SelfCheck replays the full population space against the reference
// generator: for every square and both sliding kinds, every subset of
// the relevant mask must hash to the reference attack set. The tables
// are immutable after init, so the squares are checked concurrently.
// A non-nil result means the precomputed factor data is corrupt.
func SelfCheck(ctx context.Context) error {
	var g, gctx = errgroup.WithContext(ctx)
	for sq := 0; sq < 64; sq++ {
		var sq = sq
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := checkSquare(sq, &rookMagics[sq], rookDeltas, "rook"); err != nil {
				return err
			}
			return checkSquare(sq, &bishopMagics[sq], bishopDeltas, "bishop")
		})
	}
	return g.Wait()
}

func checkSquare(sq int, m *magicEntry, deltas []int, kind string) error {
	var mask = m.mask
	for subset := Bitboard(0); ; {
		var want = slidingAttacks(sq, subset, deltas)
		var got = attackTable[m.index(subset)]
		if got != want {
			return fmt.Errorf("bitboard: %s on %s occ %s: got %s want %s",
				kind, SquareName(sq), subset, got, want)
		}
		subset = (subset - mask) & mask
		if subset == 0 {
			return nil
		}
	}
}
