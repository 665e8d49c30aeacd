package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/tempo/board"
)

func movegen(fen string) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.DebugString())
	dumpMoves(b)
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GetMoves()
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] %s (cap=%v) (enp=%v) (cas=%v) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.XBoard(), mv, b.IsCapture(mv), b.IsEnPassant(mv), b.IsCastle(mv), mv.IsPromote)
	}
	fmt.Println("outcome:", b.GetGameOutcome())
}
