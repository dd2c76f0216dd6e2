package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/query"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// batchSeparator splits the fields of a batch line.
const batchSeparator = "|"

// parseBatchLine turns one line of a batch file into a query. Blank lines
// and lines starting with '#' are skipped. A bare FEN asks for every move of
// the side to move and whether it is in check.
func parseBatchLine(line string) (query.Query, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return query.Query{}, false
	}

	fields := strings.Split(line, batchSeparator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	q := query.Query{FEN: fields[0]}
	if len(fields) > 1 {
		q.Tile = fields[1]
	}
	if len(fields) > 2 {
		q.Colour = fields[2]
	}
	if q.Tile == "" && q.Colour == "" {
		q.Colour = sideToMove(q.FEN)
		q.All = true
	}
	return q, true
}

// sideToMove reads the active colour field of a full FEN, defaulting to white.
func sideToMove(fen string) string {
	if fields := strings.Fields(fen); len(fields) > 1 && fields[1] == "b" {
		return "black"
	}
	return "white"
}

// readBatch reads queries from r. Each item's Index is its 1-based line number.
func readBatch(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if q, ok := parseBatchLine(scanner.Text()); ok {
			items = append(items, worker.WorkItem{Query: q, Index: line})
		}
	}
	return items, scanner.Err()
}

// runBatch answers items on the worker pool and writes the results in input
// order. It returns the number of answered and failed queries.
func runBatch(ctx context.Context, cfg *config.Config, items []worker.WorkItem, w io.Writer) (answered, failed int, err error) {
	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	cfg.Logf(2, "Answering %d queries with %d workers", len(items), cfg.NumWorkers())

	results, runErr := worker.RunOrdered(ctx, items, worker.QueryProcessor,
		worker.WithWorkers(cfg.NumWorkers()), worker.WithBufferSize(bufferSize))

	rw := output.NewReportWriter(w, cfg)
	for _, res := range results {
		if res.Error != nil {
			failed++
			qerr := &errors.QueryError{Err: res.Error, Line: res.Index}
			cfg.Logf(1, "%v", qerr)
			if err := rw.WriteError(res.Index, qerr); err != nil {
				return answered, failed, err
			}
			continue
		}
		answered++
		if err := rw.WriteReport(res.Index, res.Report); err != nil {
			return answered, failed, err
		}
	}
	if err := rw.Close(); err != nil {
		return answered, failed, err
	}
	return answered, failed, runErr
}
