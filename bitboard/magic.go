package bitboard

import "fmt"

// Sliding attacks are served from one shared flat table indexed by a
// per-square perfect hash: mask the occupancy to the square's relevant
// bits, multiply by a precomputed factor and keep the top bits as an
// offset into the square's slice.
// https://www.chessprogramming.org/Magic_Bitboards

const (
	bishopShift = 9
	rookShift   = 12

	bishopTableSize = 64 << bishopShift
	rookTableSize   = 64 << rookShift
)

type magicEntry struct {
	factor uint64
	mask   Bitboard
	shift  uint
	offset uint32
}

var (
	bishopMagics [64]magicEntry
	rookMagics   [64]magicEntry
	attackTable  [bishopTableSize + rookTableSize]Bitboard
)

func (m *magicEntry) index(occ Bitboard) uint32 {
	return m.offset + uint32((uint64(occ&m.mask)*m.factor)>>(64-m.shift))
}

// BishopAttacks returns the squares a bishop on sq attacks with the
// given occupancy, including the first blocker on each diagonal.
func BishopAttacks(sq int, occ Bitboard) Bitboard {
	return attackTable[bishopMagics[sq].index(occ)]
}

// RookAttacks returns the squares a rook on sq attacks with the given
// occupancy, including the first blocker on each line.
func RookAttacks(sq int, occ Bitboard) Bitboard {
	return attackTable[rookMagics[sq].index(occ)]
}

// QueenAttacks combines the two sliding kinds. Their attack sets are
// disjoint for any one origin, so xor equals union.
func QueenAttacks(sq int, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) ^ RookAttacks(sq, occ)
}

// SlowBishopAttacks is the ray-walking reference for BishopAttacks.
// It is what the hashed table is populated from; outside of table
// population it is only useful to verification tooling.
func SlowBishopAttacks(sq int, occ Bitboard) Bitboard {
	return slidingAttacks(sq, occ, bishopDeltas)
}

// SlowRookAttacks is the ray-walking reference for RookAttacks.
func SlowRookAttacks(sq int, occ Bitboard) Bitboard {
	return slidingAttacks(sq, occ, rookDeltas)
}

// BishopMask returns the relevant-occupancy mask for a bishop on sq:
// the squares whose occupancy can change the attack set. Edge squares
// never block anything beyond them and are excluded.
func BishopMask(sq int) Bitboard {
	return relevantMask(sq, bishopDeltas)
}

// RookMask returns the relevant-occupancy mask for a rook on sq.
func RookMask(sq int) Bitboard {
	return relevantMask(sq, rookDeltas)
}

func relevantMask(sq int, deltas []int) Bitboard {
	var edges = ((Rank1Mask | Rank8Mask) &^ RankMask(Rank(sq))) |
		((FileAMask | FileHMask) &^ FileMask(File(sq)))
	return slidingAttacks(sq, 0, deltas) &^ edges
}

func initMagics() {
	var offset = populateMagics(&bishopMagics, &bishopFactors, bishopShift, bishopDeltas, 0)
	populateMagics(&rookMagics, &rookFactors, rookShift, rookDeltas, offset)
}

// populateMagics fills each square's slice of the shared table,
// enumerating every subset of the relevant mask with the carry-rippler
// and storing the reference attack set at its hashed index. A factor
// that hashes two subsets with different attack sets onto the same
// index is corrupt precomputed data and aborts startup.
func populateMagics(magics *[64]magicEntry, factors *[64]uint64, shift uint, deltas []int, offset uint32) uint32 {
	for sq := 0; sq < 64; sq++ {
		var mask = relevantMask(sq, deltas)
		magics[sq] = magicEntry{
			factor: factors[sq],
			mask:   mask,
			shift:  shift,
			offset: offset,
		}
		var m = &magics[sq]
		for subset := Bitboard(0); ; {
			var attacks = slidingAttacks(sq, subset, deltas)
			var idx = m.index(subset)
			if attackTable[idx] != 0 && attackTable[idx] != attacks {
				panic(fmt.Sprintf("bitboard: magic factor %#x collides on %s",
					m.factor, SquareName(sq)))
			}
			attackTable[idx] = attacks
			subset = (subset - mask) & mask
			if subset == 0 {
				break
			}
		}
		offset += 1 << shift
	}
	return offset
}

var rookFactors = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

var bishopFactors = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}
