// Command bbtool is a diagnostic front end for the bitboard package.
//
//	bbtool verify
//	    replays the full magic-table population space against the
//	    reference generator and reports the first mismatch.
//	bbtool show -piece rook -square a1 -occ a2,f5 [-svg board.svg]
//	    prints the attack set of a piece, optionally rendering it as
//	    an SVG board.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/ross39/scalachess/bitboard"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: bbtool verify|show")
	}
	switch os.Args[1] {
	case "verify":
		verify()
	case "show":
		show(os.Args[2:])
	default:
		log.Fatalf("unknown command %q", os.Args[1])
	}
}

func verify() {
	var started = time.Now()
	if err := bitboard.SelfCheck(context.Background()); err != nil {
		log.Fatal(err)
	}
	log.Println("attack tables verified in", time.Since(started))
}

func show(args []string) {
	var fs = flag.NewFlagSet("show", flag.ExitOnError)
	var (
		piece   = fs.String("piece", "rook", "knight, king, wpawn, bpawn, bishop, rook or queen")
		square  = fs.String("square", "e4", "origin square")
		occ     = fs.String("occ", "", "comma separated occupied squares")
		svgPath = fs.String("svg", "", "write an SVG board to this file")
	)
	fs.Parse(args)

	var from = bitboard.ParseSquare(*square)
	if from == bitboard.SquareNone {
		log.Fatalf("bad square %q", *square)
	}
	var occupied bitboard.Bitboard
	if *occ != "" {
		for _, name := range strings.Split(*occ, ",") {
			var sq = bitboard.ParseSquare(name)
			if sq == bitboard.SquareNone {
				log.Fatalf("bad square %q", name)
			}
			occupied |= bitboard.SquareMask(sq)
		}
	}

	var attacks bitboard.Bitboard
	switch *piece {
	case "knight":
		attacks = bitboard.KnightAttacks(from)
	case "king":
		attacks = bitboard.KingAttacks(from)
	case "wpawn":
		attacks = bitboard.PawnAttacks(from, true)
	case "bpawn":
		attacks = bitboard.PawnAttacks(from, false)
	case "bishop":
		attacks = bitboard.BishopAttacks(from, occupied)
	case "rook":
		attacks = bitboard.RookAttacks(from, occupied)
	case "queen":
		attacks = bitboard.QueenAttacks(from, occupied)
	default:
		log.Fatalf("unknown piece %q", *piece)
	}

	printBoard(os.Stdout, from, occupied, attacks)
	fmt.Println(*piece, "on", bitboard.SquareName(from), "attacks", attacks)

	if *svgPath != "" {
		var f, err = os.Create(*svgPath)
		if err != nil {
			log.Fatal(err)
		}
		writeSVG(f, from, occupied, attacks)
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Println("wrote", *svgPath)
	}
}

func printBoard(w *os.File, from int, occupied, attacks bitboard.Bitboard) {
	for rank := bitboard.Rank8; rank >= bitboard.Rank1; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := bitboard.FileA; file <= bitboard.FileH; file++ {
			var sq = bitboard.MakeSquare(file, rank)
			var ch = "."
			switch {
			case sq == from:
				ch = "O"
			case attacks.Contains(sq) && occupied.Contains(sq):
				ch = "X"
			case attacks.Contains(sq):
				ch = "x"
			case occupied.Contains(sq):
				ch = "*"
			}
			fmt.Fprint(w, ch, " ")
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

const cell = 48

func writeSVG(f *os.File, from int, occupied, attacks bitboard.Bitboard) {
	var canvas = svg.New(f)
	canvas.Start(8*cell, 8*cell)
	for rank := bitboard.Rank1; rank <= bitboard.Rank8; rank++ {
		for file := bitboard.FileA; file <= bitboard.FileH; file++ {
			var sq = bitboard.MakeSquare(file, rank)
			var x, y = file * cell, (7 - rank) * cell
			var fill = "fill:#f0d9b5"
			if bitboard.IsDarkSquare(sq) {
				fill = "fill:#b58863"
			}
			canvas.Rect(x, y, cell, cell, fill)
			switch {
			case sq == from:
				canvas.Circle(x+cell/2, y+cell/2, cell/3, "fill:#1b6f1b")
			case attacks.Contains(sq):
				canvas.Circle(x+cell/2, y+cell/2, cell/6, "fill:#cc2222")
			}
			if occupied.Contains(sq) && sq != from {
				canvas.Rect(x+cell/4, y+cell/4, cell/2, cell/2, "fill:none;stroke:#222;stroke-width:3")
			}
		}
	}
	canvas.End()
}
