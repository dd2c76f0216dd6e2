package output

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/position"
	"github.com/lgbarn/chess-rules-go/internal/query"
)

// ReportWriter is the interface for writing query results to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes the answer to one query.
	WriteReport(line int, report query.Report) error

	// WriteError records a query that could not be answered.
	WriteError(line int, err error) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter returns the writer selected by cfg.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes a report, preceded by a diagram when ShowBoard is set.
func (tw *TextWriter) WriteReport(line int, report query.Report) error {
	if line > 0 {
		ow := NewOutputWriter(tw.w, 0)
		ow.Write("# " + report.FEN)
		ow.NewLine()
	}
	if tw.cfg.Output.ShowBoard {
		board := chess.NewBoard()
		if pieces, err := position.LoadFEN(board, report.FEN); err == nil {
			WriteBoard(tw.w, board, pieces)
		}
	}
	WriteMovesText(tw.w, report)
	return nil
}

// WriteError writes the error on its own line.
func (tw *TextWriter) WriteError(_ int, err error) error {
	ow := NewOutputWriter(tw.w, 0)
	ow.Write("error: " + err.Error())
	ow.NewLine()
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []JSONReport
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]JSONReport, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(line int, report query.Report) error {
	if jw.single {
		return WriteReportJSON(jw.w, report)
	}
	jw.reports = append(jw.reports, JSONReport{Line: line, Report: &report})
	return nil
}

// WriteError buffers an error entry (or writes immediately in single mode).
func (jw *JSONWriter) WriteError(line int, err error) error {
	entry := JSONReport{Line: line, Error: err.Error()}
	if jw.single {
		return encode(jw.w, entry)
	}
	jw.reports = append(jw.reports, entry)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	err := encode(jw.w, &JSONOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
