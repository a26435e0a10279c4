package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter returns the writer selected by cfg.
func NewReportWriter(w io.Writer, cfg *config.OutputConfig) ReportWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes reports in text form as they arrive.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(r *Report) error {
	return WriteReportText(tw.w, r)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*Report `json:"reports"`
}

// JSONWriter buffers reports and writes them as one JSON document on Flush
// or Close.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches reports into an array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report
// immediately, one document per report.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		return encodeJSON(jw.w, r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}
	err := encodeJSON(jw.w, &JSONOutput{Reports: jw.reports})
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
