// chess-rules answers move-generation and check queries about chess positions
// from the command line, from batch files, or over HTTP and WebSocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/query"
	"github.com/lgbarn/chess-rules-go/internal/server"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(exitOK)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg)
	stop()
	os.Exit(code)
}

// run dispatches to server, batch or single-query mode and returns the exit code.
func run(ctx context.Context, cfg *config.Config) int {
	switch {
	case *serveAddr != "":
		if err := server.NewServer(cfg).ListenAndServe(ctx); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			return exitFailed
		}
		return exitOK

	case *batchFile != "":
		return runBatchFile(ctx, cfg, *batchFile)
	}

	q := query.Query{FEN: *fenFlag, Tile: *tileFlag, Colour: *colourFlag, All: cfg.Output.AllPieces}
	if q.Tile == "" && q.Colour == "" {
		fmt.Fprintf(cfg.LogFile, "Error: one of -tile, -colour, -batch or -serve is required\n")
		return exitUsage
	}
	if q.All && q.Colour == "" {
		fmt.Fprintf(cfg.LogFile, "Error: -all needs -colour\n")
		return exitUsage
	}
	return runSingle(cfg, q, cfg.OutputFile)
}

// runSingle answers one query and writes it to w.
func runSingle(cfg *config.Config, q query.Query, w io.Writer) int {
	report, err := query.Run(chess.NewBoard(), q)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return exitFailed
	}

	var rw output.ReportWriter = output.NewTextWriter(w, cfg)
	if cfg.Output.JSONFormat {
		rw = output.NewJSONWriterSingle(w)
	}
	if err := rw.WriteReport(0, report); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
		return exitFailed
	}
	return exitOK
}

// runBatchFile answers every query in name ("-" for stdin).
func runBatchFile(ctx context.Context, cfg *config.Config, name string) int {
	var r io.Reader = os.Stdin
	if name != "-" {
		file, err := os.Open(name) //nolint:gosec // G304: user-supplied batch file is intended
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening batch file %s: %v\n", name, err)
			return exitFailed
		}
		defer file.Close()
		r = file
	}

	items, err := readBatch(r)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error reading batch file %s: %v\n", name, err)
		return exitFailed
	}

	answered, failed, err := runBatch(ctx, cfg, items, cfg.OutputFile)
	reportStatistics(cfg, answered, failed)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return exitFailed
	}
	if failed > 0 {
		return exitFailed
	}
	return exitOK
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(exitFailed)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(exitFailed)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitFailed)
	}
	cfg.OutputFile = file
}

// reportStatistics logs the batch summary.
func reportStatistics(cfg *config.Config, answered, failed int) {
	cfg.Logf(1, "%d queries answered, %d failed", answered, failed)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Lists piece moves and detects check in chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -tile g1\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -fen '4k3/8/8/8/8/8/8/4K2r w - - 0 1' -colour white -J\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -batch positions.txt -workers 4\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -serve :8080\n")
}
