package bitboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCarryRippler(t *testing.T) {
	var masks = []Bitboard{
		0,
		SquareMask(SquareD4),
		RookMask(SquareA1),
		BishopMask(SquareE4),
		squares(SquareB2, SquareC7, SquareF5),
	}
	for _, mask := range masks {
		var seen = make(map[Bitboard]bool)
		for subset := Bitboard(0); ; {
			require.False(t, seen[subset], "mask %s: subset %s visited twice", mask, subset)
			require.Equal(t, subset, subset&mask, "mask %s: %s is not a subset", mask, subset)
			seen[subset] = true
			subset = (subset - mask) & mask
			if subset == 0 {
				break
			}
		}
		require.Equal(t, 1<<mask.Count(), len(seen),
			"mask %s: wrong number of subsets", mask)
	}
}

func TestRelevantMasks(t *testing.T) {
	// The fixed index widths must cover the largest mask of each kind.
	for sq := 0; sq < 64; sq++ {
		require.LessOrEqual(t, RookMask(sq).Count(), rookShift,
			"rook mask on %s too wide", SquareName(sq))
		require.LessOrEqual(t, BishopMask(sq).Count(), bishopShift,
			"bishop mask on %s too wide", SquareName(sq))
	}
	// Interior rook: six squares on its file, six on its rank.
	require.Equal(t, 12, RookMask(SquareA1).Count())
	require.Equal(t, 10, RookMask(SquareD4).Count())
	// Edge occupancy never blocks anything beyond it.
	require.Equal(t, Bitboard(0), RookMask(SquareD4)&(Rank1Mask|Rank8Mask|FileAMask|FileHMask))
	require.Equal(t, Bitboard(0), BishopMask(SquareD4)&(Rank1Mask|Rank8Mask|FileAMask|FileHMask))
}

// The hashed tables must agree with the reference generator on every
// subset of every square's relevant mask.
func TestOracleEquivalence(t *testing.T) {
	require.NoError(t, SelfCheck(context.Background()))
}

func TestSlowGeneratorAgrees(t *testing.T) {
	var occs = []Bitboard{
		0,
		AllSquares,
		squares(SquareA2, SquareC6, SquareG4),
		0x0F0F0F0F0F0F0F0F,
	}
	for sq := 0; sq < 64; sq++ {
		for _, occ := range occs {
			require.Equal(t, SlowRookAttacks(sq, occ), RookAttacks(sq, occ),
				"rook on %s occ %s", SquareName(sq), occ)
			require.Equal(t, SlowBishopAttacks(sq, occ), BishopAttacks(sq, occ),
				"bishop on %s occ %s", SquareName(sq), occ)
		}
	}
}

func TestSelfCheckCancel(t *testing.T) {
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	// Tables are valid, so the sweep either finishes clean before
	// observing the cancel or reports the context error.
	if err := SelfCheck(ctx); err != nil {
		require.ErrorIs(t, err, context.Canceled)
	}
}
