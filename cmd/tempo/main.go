package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/engine"
	"github.com/daystram/tempo/xboard"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	mode  = flag.String("mode", "xboard", "run mode: xboard, ascii, selfplay, movegen, perft")
	depth = flag.Int("depth", engine.DefaultDepth, "search depth")
	eval  = flag.String("eval", "smart", "evaluator: smart, materialistic")
	fen   = flag.String("fen", board.DefaultStartingPositionFEN, "starting position")
	debug = flag.Bool("debug", false, "log ranked moves after each search")

	selfplayMaxPlies = flag.Int("selfplay.maxplies", 200, "ply cap in selfplay mode, 0 for none")

	perftDepth    = flag.Int("perft.depth", 5, "depth in perft mode")
	perftParallel = flag.Bool("perft.parallel", true, "count root moves concurrently in perft mode")
	perftDivide   = flag.Bool("perft.divide", false, "print per root move counts in perft mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain() error {
	evaluator, ok := engine.EvaluatorByName(*eval)
	if !ok {
		return fmt.Errorf("unknown evaluator: %s", *eval)
	}

	switch *mode {
	case "xboard":
		return xboard.NewInterface(
			xboard.WithDepth(*depth),
			xboard.WithEvaluator(evaluator),
			xboard.WithDebug(*debug),
		).Run(os.Stdin, os.Stdout)
	case "ascii":
		b, err := board.NewBoard(board.WithFEN(*fen))
		if err != nil {
			return err
		}
		return ascii(os.Stdin, os.Stdout, b, newEngine(evaluator), b.Turn())
	case "selfplay":
		return selfplay(*fen, newEngine(evaluator), *selfplayMaxPlies)
	case "movegen":
		return movegen(*fen)
	case "perft":
		return perft(*perftDepth, *fen, *perftParallel, *perftDivide)
	default:
		return fmt.Errorf("unknown mode: %s", *mode)
	}
}

func newEngine(evaluator engine.Evaluator) *engine.Engine {
	return engine.NewEngine(&engine.EngineConfig{
		Depth:     *depth,
		Evaluator: evaluator,
		Debug:     *debug,
		Logger:    log.Println,
	})
}
