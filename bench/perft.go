package bench

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/tempo/board"
)

// Counters tallies the leaf moves of a perft run.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (c *Counters) add(o Counters) {
	c.Nodes += o.Nodes
	c.Captures += o.Captures
	c.EnPassants += o.EnPassants
	c.Castles += o.Castles
	c.Promotions += o.Promotions
	c.Checks += o.Checks
}

// Perft counts the move tree of fen to depth and reports to out, one line
// per root move when verbose, then a summary line.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return err
	}

	var divide func(board.Move, uint64)
	if verbose {
		divide = func(mv board.Move, nodes uint64) {
			out <- fmt.Sprintf("%s: %d", mv.XBoard(), nodes)
		}
	}

	start := time.Now()
	c := Run(b, depth, parallel, divide)
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, c.Nodes, int(float64(c.Nodes)/(elapsed.Seconds()+1e-9)), c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks, elapsed.Seconds())

	return nil
}

// Run walks every legal line of b to depth. With parallel set, each root move
// is counted on its own goroutine. divide, if set, receives the node count of
// each root move.
func Run(b *board.Board, depth int, parallel bool, divide func(mv board.Move, nodes uint64)) Counters {
	var c Counters
	if depth <= 0 {
		c.Nodes = 1
		return c
	}

	mvs := b.GetMoves()
	if !parallel {
		for _, mv := range mvs {
			child := runPerftMove(b, mv, depth)
			if divide != nil {
				divide(mv, child.Nodes)
			}
			c.add(child)
		}
		return c
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, mv := range mvs {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			child := runPerftMove(b, mv, depth)
			mu.Lock()
			defer mu.Unlock()
			if divide != nil {
				divide(mv, child.Nodes)
			}
			c.add(child)
		}()
	}
	wg.Wait()
	return c
}

// runPerftMove counts the subtree below mv. b is only read.
func runPerftMove(b *board.Board, mv board.Move, d int) Counters {
	var c Counters
	if d == 1 {
		tally(b, mv, &c)
		return c
	}
	bb := b.Clone()
	bb.DoMove(mv)
	bb.NewTurn()
	runPerft(bb, d-1, &c)
	return c
}

func runPerft(b *board.Board, d int, c *Counters) {
	for _, mv := range b.GetMoves() {
		if d == 1 {
			tally(b, mv, c)
			continue
		}
		bb := b.Clone()
		bb.DoMove(mv)
		bb.NewTurn()
		runPerft(bb, d-1, c)
	}
}

func tally(b *board.Board, mv board.Move, c *Counters) {
	c.Nodes++
	if b.IsCapture(mv) {
		c.Captures++
	}
	if b.IsEnPassant(mv) {
		c.EnPassants++
	}
	if b.IsCastle(mv) {
		c.Castles++
	}
	if mv.IsPromote != board.PieceUnknown {
		c.Promotions++
	}
	bb := b.Clone()
	bb.DoMove(mv)
	if bb.IsCheck(b.Turn().Opposite()) {
		c.Checks++
	}
}
