package main

import (
	"fmt"
	"log"

	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/engine"
)

func selfplay(fen string, e *engine.Engine, maxPlies int) error {
	log.Println("============ selfplay")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println(b.Draw())

	outcome, err := e.Play(b, maxPlies, func(mv board.Move) {
		fmt.Printf("\n===== [#%d] %s: %s\n", b.FullMoveClock(), b.Turn().Opposite(), mv)
		fmt.Println(b.Draw())
		fmt.Println(b.FEN())
	})
	if err != nil {
		return err
	}

	log.Println("=============== game ended:", outcome)
	fmt.Println(b.FEN())
	return nil
}
