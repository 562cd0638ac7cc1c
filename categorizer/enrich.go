package categorizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ctxCheckEvery is how many rows are processed between context checks.
const ctxCheckEvery = 4096

// EnrichOptions configures an Enricher.
type EnrichOptions struct {
	// DescriptionColumn defaults to DefaultDescriptionColumn.
	DescriptionColumn string
	Logger            *log.Logger
}

// Enricher appends product_class and product_subclass to every row of a
// CSV table.
type Enricher struct {
	classifier *Classifier
	column     string
	logger     *log.Logger
}

// NewEnricher returns an Enricher that classifies rows with c.
func NewEnricher(c *Classifier, opts EnrichOptions) *Enricher {
	column := opts.DescriptionColumn
	if column == "" {
		column = DefaultDescriptionColumn
	}
	return &Enricher{classifier: c, column: column, logger: opts.Logger}
}

// Enrich streams the table from r to w. Rows keep their order; each row is
// classified on its own description cell.
func (e *Enricher) Enrich(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	stats := newStats()
	reader := NewReader(r)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return stats, &OpError{Op: "enrich.read_header", Kind: KindParse, Err: errors.New("empty table")}
		}
		return stats, &OpError{Op: "enrich.read_header", Kind: KindParse, Err: err}
	}
	layout, err := resolveEnrichLayout(header, e.column)
	if err != nil {
		return stats, &OpError{Op: "enrich.resolve_columns", Kind: KindMissingColumn, Err: err}
	}

	writer := NewRecordWriter(w)
	if err := writer.Write(layout.header); err != nil {
		return stats, &OpError{Op: "enrich.write_header", Kind: KindIO, Err: err}
	}
	inWidth := len(header)
	width := len(layout.header)
	out := make([]string, width)
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, &OpError{Op: "enrich.read_row", Kind: KindParse, Err: err}
		}
		if len(rec) > inWidth {
			return stats, &OpError{
				Op:   "enrich.read_row",
				Kind: KindParse,
				Err:  fmt.Errorf("line %d: %d fields, header has %d", line, len(rec), inWidth),
			}
		}
		if stats.Rows%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}
		for i := range out {
			out[i] = ""
		}
		copy(out, rec)

		var desc string
		if layout.description < len(rec) && !IsMissing(rec[layout.description]) {
			desc = rec[layout.description]
		}
		res := e.classifier.Classify(desc)
		out[layout.class] = res.Class
		out[layout.subclass] = res.Subclass
		if err := writer.Write(out); err != nil {
			return stats, &OpError{Op: "enrich.write_row", Kind: KindIO, Err: fmt.Errorf("line %d: %w", line, err)}
		}
		stats.add(res)
	}
	if err := writer.Flush(); err != nil {
		return stats, &OpError{Op: "enrich.flush", Kind: KindIO, Err: err}
	}
	return stats, nil
}

// EnrichFile enriches inPath into outPath. The two may be the same file:
// output goes to a temporary file in the destination directory and replaces
// outPath only after the whole table was written.
func (e *Enricher) EnrichFile(ctx context.Context, inPath, outPath string) (Stats, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Stats{}, &OpError{Op: "enrich.open", Kind: KindIO, Path: inPath, Err: err}
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(outPath), "."+filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return Stats{}, &OpError{Op: "enrich.create_temp", Kind: KindIO, Path: outPath, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()
	if err := tmp.Chmod(0o644); err != nil {
		return Stats{}, &OpError{Op: "enrich.chmod", Kind: KindIO, Path: tmpName, Err: err}
	}

	stats, err := e.Enrich(ctx, in, tmp)
	if err != nil {
		var oe *OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = inPath
		}
		return stats, err
	}
	if err := tmp.Close(); err != nil {
		return stats, &OpError{Op: "enrich.close", Kind: KindIO, Path: outPath, Err: err}
	}
	if err := in.Close(); err != nil {
		return stats, &OpError{Op: "enrich.close", Kind: KindIO, Path: inPath, Err: err}
	}
	if err := os.Rename(tmpName, outPath); err != nil {
		return stats, &OpError{Op: "enrich.rename", Kind: KindIO, Path: outPath, Err: err}
	}
	committed = true
	e.logf("enriched %d rows into %s (%d unclassified)", stats.Rows, outPath, stats.Unclassified)
	return stats, nil
}

func (e *Enricher) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Infof(format, args...)
	}
}
