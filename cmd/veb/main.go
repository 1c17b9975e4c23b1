package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/min1324/veb"
)

func main() {
	var (
		valueRange = flag.Uint64("range", 1<<16, "Value range, rounded up to a power of two")
		verbose    = flag.Bool("v", false, "Log every command")
	)
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	t, err := veb.New(*valueRange)
	if err != nil {
		logger.Error("create tree", zap.Uint64("range", *valueRange), zap.Error(err))
		os.Exit(1)
	}
	logger.Debug("tree created", zap.Uint64("universe", t.Universe()))

	if err := newSession(t, os.Stdout, logger).run(os.Stdin); err != nil {
		logger.Error("read commands", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
