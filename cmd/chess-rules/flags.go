// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Query options
	fenFlag    = flag.String("fen", "", "Position in FEN, full or placement only (default: starting position)")
	tileFlag   = flag.String("tile", "", "List moves for the piece on this tile (e.g. g1)")
	colourFlag = flag.String("colour", "", "Report whether this side's king is in check (white or black)")
	allPieces  = flag.Bool("all", false, "List moves for every piece of -colour")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Draw the position above text output")

	// Batch mode
	batchFile = flag.String("batch", "", "File of queries, one per line: FEN[|tile[|colour]] (- for stdin)")
	workers   = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Server mode
	serveAddr   = flag.String("serve", "", "Serve HTTP and WebSocket queries on this address (e.g. :8080)")
	originsFlag = flag.String("origins", "", "Comma-separated origins allowed for CORS and WebSocket (* for any)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Verbose diagnostics")

	// Other options
	quiet   = flag.Bool("q", false, "Quiet mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyServerFlags(cfg)
	cfg.Workers = *workers

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.AllPieces = *allPieces
}

// applyServerFlags configures the network service.
func applyServerFlags(cfg *config.Config) {
	if *serveAddr != "" {
		cfg.Server.Addr = *serveAddr
	}
	cfg.Server.AllowedOrigins = splitList(*originsFlag)
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
