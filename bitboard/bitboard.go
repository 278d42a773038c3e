// Package bitboard represents sets of squares of an 8x8 board as
// 64-bit patterns and serves precomputed attack and geometry tables
// over them. All tables are built once at package init and are
// read-only afterwards, so every exported function is safe for
// concurrent use.
package bitboard

import "math/bits"

// Bitboard is a set of board squares: bit i is set iff square i is a
// member. Bit 0 is a1, bit 7 is h1, bit 63 is h8. Every table in this
// package uses this convention; SquareMask is the only place a square
// index is turned into a bit.
type Bitboard uint64

const (
	FileAMask Bitboard = 0x0101010101010101 << iota
	FileBMask
	FileCMask
	FileDMask
	FileEMask
	FileFMask
	FileGMask
	FileHMask
)

const (
	Rank1Mask Bitboard = 0xFF << (8 * iota)
	Rank2Mask
	Rank3Mask
	Rank4Mask
	Rank5Mask
	Rank6Mask
	Rank7Mask
	Rank8Mask
)

const (
	Empty      Bitboard = 0
	AllSquares Bitboard = 0xFFFFFFFFFFFFFFFF
	Corners    Bitboard = 0x8100000000000081
)

var fileMask = [8]Bitboard{
	FileAMask, FileBMask, FileCMask, FileDMask, FileEMask, FileFMask, FileGMask, FileHMask,
}

var rankMask = [8]Bitboard{
	Rank1Mask, Rank2Mask, Rank3Mask, Rank4Mask, Rank5Mask, Rank6Mask, Rank7Mask, Rank8Mask,
}

// SquareMask returns the bitboard holding just sq.
func SquareMask(sq int) Bitboard {
	return Bitboard(1) << uint(sq)
}

func FileMask(file int) Bitboard {
	return fileMask[file]
}

func RankMask(rank int) Bitboard {
	return rankMask[rank]
}

func (b Bitboard) Contains(sq int) bool {
	return b&SquareMask(sq) != 0
}

func (b Bitboard) IsEmpty() bool {
	return b == 0
}

// MoreThanOne reports whether at least two bits are set.
func (b Bitboard) MoreThanOne() bool {
	return b != 0 && ((b-1)&b) != 0
}

func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the lowest set square. The result is undefined for
// the empty bitboard; use LowestSquare when the set may be empty.
func FirstOne(b Bitboard) int {
	return bits.TrailingZeros64(uint64(b))
}

// LowestSquare returns the lowest set square, or (SquareNone, false)
// for the empty bitboard.
func (b Bitboard) LowestSquare() (int, bool) {
	if b == 0 {
		return SquareNone, false
	}
	return FirstOne(b), true
}

// Each calls f for every member square, from lowest to highest.
func (b Bitboard) Each(f func(sq int)) {
	for x := b; x != 0; x &= x - 1 {
		f(FirstOne(x))
	}
}

func Up(b Bitboard) Bitboard {
	return b << 8
}

func Down(b Bitboard) Bitboard {
	return b >> 8
}

func Right(b Bitboard) Bitboard {
	return (b & ^FileHMask) << 1
}

func Left(b Bitboard) Bitboard {
	return (b & ^FileAMask) >> 1
}

func UpRight(b Bitboard) Bitboard {
	return Up(Right(b))
}

func UpLeft(b Bitboard) Bitboard {
	return Up(Left(b))
}

func DownRight(b Bitboard) Bitboard {
	return Down(Right(b))
}

func DownLeft(b Bitboard) Bitboard {
	return Down(Left(b))
}

func (b Bitboard) String() string {
	var s = ""
	for x := b; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		if s != "" {
			s += ","
		}
		s += SquareName(sq)
	}
	return "(" + s + ")"
}
