package categorizer

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
)

// naTokens are the cell values pandas reads as missing by default.
var naTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsMissing reports whether a raw cell value denotes a missing value.
func IsMissing(cell string) bool {
	_, ok := naTokens[cell]
	return ok
}

// NewReader returns a csv.Reader tolerant of ragged rows.
func NewReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	return reader
}

// RecordWriter writes CSV the way pandas.DataFrame.to_csv does: fields are
// quoted only when they contain a separator, quote or line break, and
// records end with "\n".
type RecordWriter struct {
	w *bufio.Writer
}

// NewRecordWriter wraps w in a buffered RecordWriter.
func NewRecordWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{w: bufio.NewWriter(w)}
}

// Write writes a single record.
func (rw *RecordWriter) Write(rec []string) error {
	for i, field := range rec {
		if i > 0 {
			if err := rw.w.WriteByte(','); err != nil {
				return err
			}
		}
		if !needsCSVQuote(field) {
			if _, err := rw.w.WriteString(field); err != nil {
				return err
			}
			continue
		}
		if err := rw.w.WriteByte('"'); err != nil {
			return err
		}
		if _, err := rw.w.WriteString(strings.ReplaceAll(field, `"`, `""`)); err != nil {
			return err
		}
		if err := rw.w.WriteByte('"'); err != nil {
			return err
		}
	}
	return rw.w.WriteByte('\n')
}

// Flush writes buffered data to the underlying writer.
func (rw *RecordWriter) Flush() error {
	return rw.w.Flush()
}

func needsCSVQuote(s string) bool {
	return strings.ContainsAny(s, ",\"\n\r")
}
