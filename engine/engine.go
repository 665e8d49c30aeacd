package engine

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/tempo/board"
)

const (
	DefaultDepth = 2
)

var (
	ErrNoMoves = errors.New("no legal moves")
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	Depth     int
	Evaluator Evaluator
	Debug     bool
	Logger    func(...any)
}

// Engine picks moves for a game. Its cache lives as long as the game.
type Engine struct {
	depth  int
	eval   Evaluator
	cache  *Cache
	debug  bool
	logger func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultDepth
	}
	if cfg.Evaluator == nil {
		cfg.Evaluator = Smart
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}

	return &Engine{
		depth:  cfg.Depth,
		eval:   cfg.Evaluator,
		cache:  NewCache(),
		debug:  cfg.Debug,
		logger: cfg.Logger,
	}
}

// Search returns the best move for the side to move on b.
func (e *Engine) Search(b *board.Board) (board.Move, error) {
	s := b.Turn()
	e.cache.ResetStats()

	startTime := time.Now()
	mvs := ComputeUtility(b, s, e.depth, e.eval, e.cache)
	elapsedTime := time.Since(startTime)

	mv, ok := Best(mvs, s)
	if !ok {
		return board.Move{}, ErrNoMoves
	}

	if e.debug {
		ranked := append([]board.Move(nil), mvs...)
		SortByUtility(ranked, s)
		e.logger(DumpMoves(ranked, "# "))
	}
	hits, misses, writes := e.cache.Stats()
	e.logger(message.NewPrinter(language.English).
		Sprintf("# depth:%d best:%s [%s] moves:%d cache:%d hit:%d miss:%d write:%d t:%s",
			e.depth, mv.XBoard(), FormatUtility(mv.Utility), len(mvs), e.cache.Len(), hits, misses, writes, elapsedTime))

	return mv, nil
}

// Play moves for both sides on b until the game ends or maxPlies moves were
// made, calling onMove after each one. maxPlies <= 0 means no limit.
func (e *Engine) Play(b *board.Board, maxPlies int, onMove func(mv board.Move)) (board.Outcome, error) {
	for ply := 0; maxPlies <= 0 || ply < maxPlies; ply++ {
		if outcome := b.GetGameOutcome(); !outcome.IsRunning() {
			return outcome, nil
		}
		mv, err := e.Search(b)
		if err != nil {
			return board.OutcomeInProgress, err
		}
		b.DoMove(mv)
		b.NewTurn()
		if onMove != nil {
			onMove(mv)
		}
	}
	return b.GetGameOutcome(), nil
}

// Reset clears the cache for a new game.
func (e *Engine) Reset() {
	e.cache.Reset()
}

func (e *Engine) Depth() int {
	return e.depth
}
