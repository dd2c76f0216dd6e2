// Package errors provides sentinel errors and error types for chess-rules.
// Sentinels are checked with errors.Is(); QueryError carries the position
// a failure belongs to and unwraps to the underlying sentinel.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidTile indicates a coordinate outside a1-h8.
	ErrInvalidTile = errors.New("invalid tile")

	// ErrNotOnBoard indicates a tile that holds no piece, or a piece whose
	// home tile is not part of the board.
	ErrNotOnBoard = errors.New("no piece on tile")

	// ErrMissingKing indicates a position without a king for the queried colour.
	ErrMissingKing = errors.New("missing king")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRequest indicates a query that names neither a tile nor a colour.
	ErrInvalidRequest = errors.New("invalid request")
)

// QueryError wraps errors with the context of the position being queried.
type QueryError struct {
	Err  error  // The underlying error
	FEN  string // Position the query was made against (if known)
	Tile string // Tile named by the query (if any)
	Line int    // Line number in a batch file (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *QueryError) Error() string {
	var parts []string

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("fen %q", e.FEN))
	}
	if e.Tile != "" {
		parts = append(parts, fmt.Sprintf("tile %s", e.Tile))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the QueryError wrapper.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
