package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/engine"
)

// ascii plays human against e on b, human moves read from r as "e2 e4".
func ascii(r io.Reader, w io.Writer, b *board.Board, e *engine.Engine, human board.Side) error {
	reader := bufio.NewReader(r)
	for {
		fmt.Fprintln(w, b.Dump())

		switch b.GetGameOutcome() {
		case board.OutcomeCheckmate:
			if b.Turn() == human {
				fmt.Fprintln(w, "You lose!")
			} else {
				fmt.Fprintln(w, "You win!")
			}
			return nil
		case board.OutcomeDraw:
			fmt.Fprintln(w, "Draw")
			return nil
		}

		if b.Turn() != human {
			mv, err := e.Search(b)
			if err != nil {
				return err
			}
			b.DoMove(mv)
			b.NewTurn()
			fmt.Fprintln(w, "Engine plays:", mv)
			continue
		}

		fmt.Fprint(w, "Your move: ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil
		if eof && strings.TrimSpace(line) == "" {
			fmt.Fprintln(w)
			return nil
		}

		mv, ok := readMove(w, b, line)
		if ok {
			b.DoMove(mv)
			b.NewTurn()
		}
		if eof {
			return nil
		}
	}
}

func readMove(w io.Writer, b *board.Board, line string) (board.Move, bool) {
	args := strings.Fields(line)
	if len(args) != 2 {
		fmt.Fprintln(w, "Invalid syntax.")
		return board.Move{}, false
	}
	parsed, err := board.ParseMove(args[0], args[1])
	if err != nil {
		fmt.Fprintln(w, "Invalid syntax.")
		return board.Move{}, false
	}
	mv, ok := board.FindMove(b.GetMoves(), parsed)
	if !ok {
		fmt.Fprintln(w, "Invalid move. Valids:")
		for _, valid := range b.GetMoves() {
			fmt.Fprintln(w, " ", valid)
		}
		return board.Move{}, false
	}
	return mv, true
}
