package bitboard

// Step deltas in linear square indexes. A ray leaving the board wraps
// around a file edge; the wrap is caught by the SquareDistance guard in
// slidingAttacks. The guard bound of 2 is valid for these delta sets
// only, do not reuse it with larger steps.
var (
	rookDeltas      = []int{8, -8, 1, -1}
	bishopDeltas    = []int{7, 9, -7, -9}
	kingDeltas      = []int{8, -8, 1, -1, 7, 9, -7, -9}
	knightDeltas    = []int{17, 15, 10, 6, -17, -15, -10, -6}
	whitePawnDeltas = []int{7, 9}
	blackPawnDeltas = []int{-7, -9}
)

var (
	whitePawnAttacks, blackPawnAttacks [64]Bitboard
	knightAttacks                      [64]Bitboard
	kingAttacks                        [64]Bitboard
	betweenMask                        [64][64]Bitboard
	rayMask                            [64][64]Bitboard
)

// slidingAttacks walks every delta from the origin until the ray leaves
// the board or hits an occupied square. The blocking square itself is
// included: a slider attacks up to and including the first blocker.
// This is the reference generator; the magic tables are populated from
// it and must agree with it exactly.
func slidingAttacks(from int, occ Bitboard, deltas []int) Bitboard {
	var attacks Bitboard
	for _, delta := range deltas {
		for sq := from; ; {
			var next = sq + delta
			if next < 0 || next > 63 || SquareDistance(next, sq) > 2 {
				break
			}
			sq = next
			attacks |= SquareMask(sq)
			if occ.Contains(sq) {
				break
			}
		}
	}
	return attacks
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq int) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq int) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the capture squares of a pawn on sq, for white
// when side is true.
func PawnAttacks(sq int, side bool) Bitboard {
	if side {
		return whitePawnAttacks[sq]
	}
	return blackPawnAttacks[sq]
}

// AllWhitePawnAttacks returns the squares attacked by any member pawn.
func AllWhitePawnAttacks(b Bitboard) Bitboard {
	return UpLeft(b) | UpRight(b)
}

func AllBlackPawnAttacks(b Bitboard) Bitboard {
	return DownLeft(b) | DownRight(b)
}

// Between returns the squares strictly between a and b when they share
// a rank, file or diagonal, and the empty bitboard otherwise.
func Between(a, b int) Bitboard {
	return betweenMask[a][b]
}

// Ray returns the full board line through a and b, endpoints included,
// when they are aligned, and the empty bitboard otherwise.
func Ray(a, b int) Bitboard {
	return rayMask[a][b]
}

// Aligned reports whether c lies on the line through a and b.
func Aligned(a, b, c int) bool {
	return rayMask[a][b].Contains(c)
}

func init() {
	initMagics()
	initLeapers()
	initRelations()
}

// Leapers are never blocked: generating with a fully occupied board
// stops every ray after a single step.
func initLeapers() {
	for sq := 0; sq < 64; sq++ {
		knightAttacks[sq] = slidingAttacks(sq, AllSquares, knightDeltas)
		kingAttacks[sq] = slidingAttacks(sq, AllSquares, kingDeltas)
		whitePawnAttacks[sq] = slidingAttacks(sq, AllSquares, whitePawnDeltas)
		blackPawnAttacks[sq] = slidingAttacks(sq, AllSquares, blackPawnDeltas)
	}
}

func initRelations() {
	for a := 0; a < 64; a++ {
		for b := 0; b < 64; b++ {
			if a == b {
				continue
			}
			switch {
			case RookAttacks(a, 0).Contains(b):
				betweenMask[a][b] = RookAttacks(a, SquareMask(b)) & RookAttacks(b, SquareMask(a))
				rayMask[a][b] = (RookAttacks(a, 0) & RookAttacks(b, 0)) | SquareMask(a) | SquareMask(b)
			case BishopAttacks(a, 0).Contains(b):
				betweenMask[a][b] = BishopAttacks(a, SquareMask(b)) & BishopAttacks(b, SquareMask(a))
				rayMask[a][b] = (BishopAttacks(a, 0) & BishopAttacks(b, 0)) | SquareMask(a) | SquareMask(b)
			}
		}
	}
}
