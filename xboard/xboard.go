package xboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/engine"
)

var (
	ErrHandshake = errors.New("expected xboard handshake")

	defaultOptions = options{
		depth:     engine.DefaultDepth,
		evaluator: engine.Smart,
		debug:     false,
	}

	// commands accepted without effect
	ignored = map[string]bool{
		"random":   true,
		"level":    true,
		"post":     true,
		"nopost":   true,
		"hard":     true,
		"easy":     true,
		"time":     true,
		"otim":     true,
		"accepted": true,
		"rejected": true,
		"computer": true,
		"name":     true,
		"rating":   true,
		"st":       true,
		"xboard":   true,
	}
)

type options struct {
	depth     int
	evaluator engine.Evaluator
	debug     bool
}

type Option func(*options)

func WithDepth(depth int) Option {
	return func(o *options) {
		o.depth = depth
	}
}

func WithEvaluator(eval engine.Evaluator) Option {
	return func(o *options) {
		o.evaluator = eval
	}
}

func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// Interface speaks the XBoard/WinBoard protocol. The engine plays Black
// unless told otherwise.
type Interface struct {
	board   *board.Board
	engine  *engine.Engine
	options options

	engineSide board.Side
	w          io.Writer
}

func NewInterface(opts ...Option) *Interface {
	o := defaultOptions
	for _, f := range opts {
		f(&o)
	}
	return &Interface{
		options: o,
	}
}

// Run serves the session on r and w until quit or the end of input.
func (i *Interface) Run(r io.Reader, w io.Writer) error {
	i.w = w
	reader := bufio.NewReader(r)

	line, err := reader.ReadString('\n')
	if strings.TrimSpace(line) != "xboard" {
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return ErrHandshake
	}
	if err := i.reset(); err != nil {
		return err
	}

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil
		line = strings.TrimSpace(line)
		if line == "" {
			if eof {
				return nil
			}
			continue
		}

		switch args := strings.Fields(line); args[0] {
		case "quit":
			return nil
		case "protover":
			i.println("feature reuse=0 sigint=0 sigterm=0 done=1")
		case "new":
			if err := i.reset(); err != nil {
				return err
			}
		case "white":
			i.engineSide = board.SideWhite
		case "black":
			i.engineSide = board.SideBlack
		case "force":
			i.engineSide = board.SideUnknown
		case "go":
			i.engineSide = i.board.Turn()
			i.commandGo()
		case "ping":
			i.println("pong " + strings.Join(args[1:], " "))
		case "sd":
			i.commandDepth(args[1:])
		case "d":
			i.println(i.board.Dump())
		case "usermove":
			if len(args) == 2 {
				i.commandMove(args[1])
			}
		default:
			if ignored[args[0]] {
				break
			}
			// not a known command, must be a move
			i.commandMove(args[0])
		}
		if eof {
			return nil
		}
	}
}

func (i *Interface) commandMove(text string) {
	parsed, err := board.ParseXBoardMove(text)
	if err != nil {
		i.println("Illegal move: " + text)
		return
	}
	mv, ok := board.FindMove(i.board.GetMoves(), parsed)
	if !ok {
		i.println("Illegal move: " + text)
		return
	}
	i.board.DoMove(mv)
	i.board.NewTurn()
	if i.reportResult() {
		return
	}
	if i.board.Turn() == i.engineSide {
		i.commandGo()
	}
}

func (i *Interface) commandGo() {
	if !i.board.GetGameOutcome().IsRunning() {
		return
	}
	mv, err := i.engine.Search(i.board)
	if err != nil {
		i.println("# " + err.Error())
		return
	}
	i.board.DoMove(mv)
	i.board.NewTurn()
	i.println("move " + mv.XBoard())
	i.reportResult()
}

func (i *Interface) commandDepth(args []string) {
	if len(args) != 1 {
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return
	}
	i.options.depth = depth
	i.engine = i.newEngine()
}

// reportResult announces a finished game and reports whether it ended.
func (i *Interface) reportResult() bool {
	switch i.board.GetGameOutcome() {
	case board.OutcomeCheckmate:
		if i.board.Turn() == board.SideBlack {
			i.println("1-0 {White mates}")
		} else {
			i.println("0-1 {Black mates}")
		}
		return true
	case board.OutcomeDraw:
		i.println("1/2-1/2 {Draw}")
		return true
	default:
		return false
	}
}

func (i *Interface) reset() error {
	b, err := board.NewBoard()
	if err != nil {
		return err
	}
	i.board = b
	i.engineSide = board.SideBlack
	i.engine = i.newEngine()
	return nil
}

func (i *Interface) newEngine() *engine.Engine {
	return engine.NewEngine(&engine.EngineConfig{
		Depth:     i.options.depth,
		Evaluator: i.options.evaluator,
		Debug:     i.options.debug,
		Logger:    i.println,
	})
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.w, a...)
}
