package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"yashubustudio/retailsample/categorizer"
)

func workbookBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestService(t *testing.T, url string, mutate func(*Config)) (*Service, Config) {
	t.Helper()
	off := false
	cfg := Config{
		URL:      url,
		DestDir:  filepath.Join(t.TempDir(), "sample-datasets"),
		Progress: &off,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	cfg.ApplyDefaults()
	return NewService(cfg, NewLogger(io.Discard, false), nil), cfg
}

func TestServiceRun_EndToEnd(t *testing.T) {
	payload := workbookBytes(t, [][]any{
		{"InvoiceNo", "StockCode", "Description", "Quantity"},
		{"536365", "85123A", "WHITE HANGING HEART T-LIGHT HOLDER", 6},
		{"536365", "71053", "WHITE METAL LANTERN", 6},
		{"536366", "22633", "", 6},
		{"536367", "84879", "Cardboard Box", 32},
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	metrics := filepath.Join(t.TempDir(), "retailsample.prom")
	svc, cfg := newTestService(t, srv.URL, func(c *Config) { c.MetricsFile = metrics })
	sum, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.RunID == "" {
		t.Fatalf("expected a run id")
	}
	if sum.BytesFetched != int64(len(payload)) {
		t.Fatalf("bytes fetched = %d, want %d", sum.BytesFetched, len(payload))
	}
	if sum.RowsConverted != 4 || sum.Stats.Rows != 4 {
		t.Fatalf("rows converted=%d enriched=%d", sum.RowsConverted, sum.Stats.Rows)
	}
	if _, err := os.Stat(cfg.WorkbookPath()); !os.IsNotExist(err) {
		t.Fatalf("workbook should be removed, stat err = %v", err)
	}

	f, err := os.Open(cfg.CSVPath())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	wantHeader := []string{"InvoiceNo", "StockCode", "Description", "Quantity", "product_class", "product_subclass"}
	if strings.Join(rows[0], ",") != strings.Join(wantHeader, ",") {
		t.Fatalf("header = %v", rows[0])
	}
	want := [][2]string{
		{"Home Decor", "T-Light Holder"},
		{"Home Decor", "Lantern"},
		{categorizer.DefaultClass, categorizer.DefaultSubclass},
		{"Stationery & Craft", "Card"},
	}
	for i, w := range want {
		row := rows[i+1]
		if row[4] != w[0] || row[5] != w[1] {
			t.Fatalf("row %d = (%s, %s), want %v", i, row[4], row[5], w)
		}
	}

	prom, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatalf("metrics file: %v", err)
	}
	if !bytes.Contains(prom, []byte("retailsample_rows_enriched 4")) {
		t.Fatalf("metrics missing row count:\n%s", prom)
	}
	if !bytes.Contains(prom, []byte(`retailsample_product_class_rows{product_class="Home Decor"} 2`)) {
		t.Fatalf("metrics missing class count:\n%s", prom)
	}
}

func TestServiceRun_KeepWorkbook(t *testing.T) {
	payload := workbookBytes(t, [][]any{{"Description"}, {"mug"}})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	svc, cfg := newTestService(t, srv.URL, func(c *Config) { c.KeepWorkbook = true })
	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if _, err := os.Stat(cfg.WorkbookPath()); err != nil {
		t.Fatalf("workbook should be kept: %v", err)
	}
}

func TestServiceRun_DownloadFailureWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc, cfg := newTestService(t, srv.URL, nil)
	_, err := svc.Run(context.Background())
	if !categorizer.IsKind(err, categorizer.KindNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
	for _, p := range []string{cfg.WorkbookPath(), cfg.CSVPath()} {
		if _, statErr := os.Stat(p); !os.IsNotExist(statErr) {
			t.Fatalf("%s should not exist", p)
		}
	}
}

func TestServiceRun_MalformedWorkbook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a spreadsheet"))
	}))
	defer srv.Close()

	svc, cfg := newTestService(t, srv.URL, nil)
	_, err := svc.Run(context.Background())
	if !categorizer.IsKind(err, categorizer.KindParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, statErr := os.Stat(cfg.CSVPath()); !os.IsNotExist(statErr) {
		t.Fatalf("csv should not exist")
	}
}

func TestServiceRun_MissingDescriptionColumn(t *testing.T) {
	payload := workbookBytes(t, [][]any{{"InvoiceNo", "Title"}, {"1", "mug"}})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	svc, _ := newTestService(t, srv.URL, nil)
	_, err := svc.Run(context.Background())
	if !categorizer.IsKind(err, categorizer.KindMissingColumn) {
		t.Fatalf("expected missing_column, got %v", err)
	}
}
