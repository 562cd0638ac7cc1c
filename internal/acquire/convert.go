package acquire

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/xuri/excelize/v2"

	"yashubustudio/retailsample/categorizer"
)

// ConvertOptions configures ConvertWorkbook.
type ConvertOptions struct {
	// Sheet selects a worksheet by name; empty means the first sheet.
	Sheet  string
	Logger *log.Logger
}

// ConvertWorkbook writes one worksheet of the xlsx file at xlsxPath as CSV
// to csvPath and returns the number of data rows. The first row is the
// header; rows shorter than the header are padded with empty cells. Cells
// are written as the workbook displays them.
func ConvertWorkbook(ctx context.Context, xlsxPath, csvPath string, opts ConvertOptions) (int, error) {
	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return 0, &categorizer.OpError{Op: "acquire.open_workbook", Kind: categorizer.KindParse, Path: xlsxPath, Err: err}
	}
	defer f.Close()

	sheet, err := pickSheet(f, opts.Sheet)
	if err != nil {
		return 0, &categorizer.OpError{Op: "acquire.pick_sheet", Kind: categorizer.KindParse, Path: xlsxPath, Err: err}
	}

	dir := filepath.Dir(csvPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, &categorizer.OpError{Op: "acquire.mkdir", Kind: categorizer.KindIO, Path: dir, Err: err}
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(csvPath)+".*.tmp")
	if err != nil {
		return 0, &categorizer.OpError{Op: "acquire.create_temp", Kind: categorizer.KindIO, Path: csvPath, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	n, err := writeSheetCSV(ctx, f, sheet, categorizer.NewRecordWriter(tmp))
	if err != nil {
		var oe *categorizer.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = xlsxPath
		}
		return 0, err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return 0, &categorizer.OpError{Op: "acquire.chmod", Kind: categorizer.KindIO, Path: tmpName, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return 0, &categorizer.OpError{Op: "acquire.close", Kind: categorizer.KindIO, Path: tmpName, Err: err}
	}
	if err := os.Rename(tmpName, csvPath); err != nil {
		return 0, &categorizer.OpError{Op: "acquire.rename", Kind: categorizer.KindIO, Path: csvPath, Err: err}
	}
	committed = true
	if opts.Logger != nil {
		opts.Logger.Infof("converted %s to %s (%d rows)", xlsxPath, csvPath, n)
	}
	return n, nil
}

func pickSheet(f *excelize.File, want string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	if want == "" {
		return sheets[0], nil
	}
	for _, name := range sheets {
		if name == want {
			return name, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found (have %q)", want, sheets)
}

func writeSheetCSV(ctx context.Context, f *excelize.File, sheet string, w *categorizer.RecordWriter) (int, error) {
	rows, err := f.Rows(sheet)
	if err != nil {
		return 0, &categorizer.OpError{Op: "acquire.read_sheet", Kind: categorizer.KindParse, Err: err}
	}
	defer rows.Close()

	width := -1
	count := 0
	for rows.Next() {
		if count%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}
		cols, err := rows.Columns()
		if err != nil {
			return count, &categorizer.OpError{Op: "acquire.read_row", Kind: categorizer.KindParse, Err: err}
		}
		if width < 0 {
			if len(cols) == 0 {
				return 0, &categorizer.OpError{Op: "acquire.read_header", Kind: categorizer.KindParse, Err: errors.New("empty header row")}
			}
			width = len(cols)
		} else {
			// Blank spacer rows carry no data.
			if len(cols) == 0 {
				continue
			}
			count++
		}
		if len(cols) > width {
			return count, &categorizer.OpError{
				Op:   "acquire.read_row",
				Kind: categorizer.KindParse,
				Err:  fmt.Errorf("data row %d has %d cells, header has %d", count, len(cols), width),
			}
		}
		if len(cols) < width {
			cols = append(cols, make([]string, width-len(cols))...)
		}
		if err := w.Write(cols); err != nil {
			return count, &categorizer.OpError{Op: "acquire.write_row", Kind: categorizer.KindIO, Err: err}
		}
	}
	if err := rows.Error(); err != nil {
		return count, &categorizer.OpError{Op: "acquire.read_sheet", Kind: categorizer.KindParse, Err: err}
	}
	if width < 0 {
		return 0, &categorizer.OpError{Op: "acquire.read_header", Kind: categorizer.KindParse, Err: errors.New("sheet is empty")}
	}
	if err := w.Flush(); err != nil {
		return count, &categorizer.OpError{Op: "acquire.flush", Kind: categorizer.KindIO, Err: err}
	}
	return count, nil
}
