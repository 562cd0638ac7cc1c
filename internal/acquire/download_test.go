package acquire

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"yashubustudio/retailsample/categorizer"
)

func TestDownload_WritesBody(t *testing.T) {
	payload := bytes.Repeat([]byte("retail"), 1000)
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "nested", "retail.xlsx")
	var progress bytes.Buffer
	d := NewDownloader(srv.Client(), DownloaderOptions{UserAgent: "test-agent", Progress: &progress})
	n, err := d.Download(context.Background(), srv.URL+"/Online%20Retail.xlsx", dest)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if n != int64(len(payload)) {
		t.Fatalf("n = %d, want %d", n, len(payload))
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, payload) {
		t.Fatalf("payload mismatch")
	}
	if gotUA != "test-agent" {
		t.Fatalf("user agent = %q", gotUA)
	}
	entries, _ := os.ReadDir(filepath.Dir(dest))
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}

func TestDownload_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "retail.xlsx")
	d := NewDownloader(srv.Client(), DownloaderOptions{})
	_, err := d.Download(context.Background(), srv.URL, dest)
	if !categorizer.IsKind(err, categorizer.KindNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Fatalf("dest should not exist, stat err = %v", statErr)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected empty dir, got %d entries", len(entries))
	}
}

func TestDownload_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	dest := filepath.Join(t.TempDir(), "retail.xlsx")
	d := NewDownloader(NewHTTPClient(HTTPConfig{Timeout: 2 * time.Second}), DownloaderOptions{})
	_, err := d.Download(context.Background(), url, dest)
	if !categorizer.IsKind(err, categorizer.KindNetwork) {
		t.Fatalf("expected network error, got %v", err)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Fatalf("dest should not exist")
	}
}

func TestHTTPConfig_ApplyDefaults(t *testing.T) {
	cfg := HTTPConfig{Timeout: time.Second}
	cfg.ApplyDefaults()
	d := DefaultHTTPConfig()
	if cfg.Timeout != time.Second {
		t.Fatalf("explicit timeout overwritten: %v", cfg.Timeout)
	}
	if cfg.DialTimeout != d.DialTimeout || cfg.UserAgent != d.UserAgent {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}
