package main

import (
	"log"

	"github.com/daystram/tempo/bench"
)

func perft(depth int, fen string, parallel, divide bool) error {
	log.Printf("============ perft(%d)\n", depth)

	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			log.Println(line)
		}
	}()

	err := bench.Perft(depth, fen, parallel, divide, out)
	close(out)
	<-done
	return err
}
