package bitboard

import (
	"testing"
)

func TestMoreThanOne(t *testing.T) {
	type args struct {
		value Bitboard
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		// test cases.
		{"zero", args{0}, false},
		{"one", args{1}, false},
		{"far one", args{1 << 5}, false},
		{"farther one", args{1 << 60}, false},
		{"two ones", args{3}, true},
		{"two ones apart", args{1<<6 | 1<<25}, true},
		{"three ones apart", args{1<<6 | 1<<25 | 1<<36}, true},
		{"all", args{AllSquares}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.value.MoreThanOne(); got != tt.want {
				t.Errorf("MoreThanOne() = %v, want %v", got, tt.want)
			}
			if want := tt.args.value.Count() >= 2; want != tt.want {
				t.Errorf("Count() disagrees with MoreThanOne(): %v", want)
			}
		})
	}
}

func TestLowestSquare(t *testing.T) {
	tests := []struct {
		name   string
		value  Bitboard
		want   int
		wantOk bool
	}{
		// test cases.
		{"empty", 0, SquareNone, false},
		{"a1", SquareMask(SquareA1), SquareA1, true},
		{"h8", SquareMask(SquareH8), SquareH8, true},
		{"rank 5", Rank5Mask, SquareA5, true},
		{"file h", FileHMask, SquareH1, true},
		{"corners", Corners, SquareA1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got, ok = tt.value.LowestSquare()
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("LowestSquare() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestEach(t *testing.T) {
	var samples = []Bitboard{
		0,
		SquareMask(SquareE4),
		Rank2Mask | FileGMask,
		Corners,
		AllSquares,
		0x00FF00F00AB00501,
	}
	for _, b := range samples {
		var rebuilt Bitboard
		var visited int
		var last = SquareNone
		b.Each(func(sq int) {
			if sq <= last {
				t.Errorf("%s: visited %v after %v", b, sq, last)
			}
			last = sq
			rebuilt |= SquareMask(sq)
			visited++
		})
		if rebuilt != b {
			t.Errorf("fold of %s rebuilt %s", b, rebuilt)
		}
		if visited != b.Count() {
			t.Errorf("%s: visited %v squares, Count() = %v", b, visited, b.Count())
		}
	}
}

func TestCount(t *testing.T) {
	if Empty.Count() != 0 {
		t.Errorf("Count(empty) = %v", Empty.Count())
	}
	if AllSquares.Count() != 64 {
		t.Errorf("Count(all) = %v", AllSquares.Count())
	}
	if Corners.Count() != 4 {
		t.Errorf("Count(corners) = %v", Corners.Count())
	}
}

func TestMasks(t *testing.T) {
	var all Bitboard
	for f := FileA; f <= FileH; f++ {
		if FileMask(f).Count() != 8 {
			t.Errorf("FileMask(%v) has %v squares", f, FileMask(f).Count())
		}
		all |= FileMask(f)
	}
	if all != AllSquares {
		t.Errorf("file masks union to %s", all)
	}
	all = 0
	for r := Rank1; r <= Rank8; r++ {
		if RankMask(r).Count() != 8 {
			t.Errorf("RankMask(%v) has %v squares", r, RankMask(r).Count())
		}
		all |= RankMask(r)
	}
	if all != AllSquares {
		t.Errorf("rank masks union to %s", all)
	}
	for sq := 0; sq < 64; sq++ {
		if !FileMask(File(sq)).Contains(sq) || !RankMask(Rank(sq)).Contains(sq) {
			t.Errorf("square %v not on its own file/rank mask", SquareName(sq))
		}
	}
	if corners := SquareMask(SquareA1) | SquareMask(SquareH1) |
		SquareMask(SquareA8) | SquareMask(SquareH8); corners != Corners {
		t.Errorf("Corners = %s, want %s", Corners, corners)
	}
}

func TestShifts(t *testing.T) {
	var e4 = SquareMask(SquareE4)
	tests := []struct {
		name string
		got  Bitboard
		want int
	}{
		// test cases.
		{"up", Up(e4), SquareE5},
		{"down", Down(e4), SquareE3},
		{"left", Left(e4), SquareD4},
		{"right", Right(e4), SquareF4},
		{"up-left", UpLeft(e4), SquareD5},
		{"up-right", UpRight(e4), SquareF5},
		{"down-left", DownLeft(e4), SquareD3},
		{"down-right", DownRight(e4), SquareF3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != SquareMask(tt.want) {
				t.Errorf("got %s, want %s", tt.got, SquareMask(tt.want))
			}
		})
	}
	// Shifts must not wrap files.
	if Left(FileAMask) != 0 || Right(FileHMask) != 0 {
		t.Error("horizontal shift wrapped a file edge")
	}
	if Up(Rank8Mask) != 0 || Down(Rank1Mask) != 0 {
		t.Error("vertical shift wrapped past the board")
	}
}

func BenchmarkEach(b *testing.B) {
	var sum int
	for n := 0; n < b.N; n++ {
		Bitboard(0x00FF00F00AB00501).Each(func(sq int) {
			sum += sq
		})
	}
	_ = sum
}
