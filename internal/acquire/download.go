package acquire

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"

	"yashubustudio/retailsample/categorizer"
)

// Downloader fetches a remote resource onto disk.
type Downloader struct {
	client    *http.Client
	userAgent string
	// progress receives a byte progress bar; nil disables it.
	progress io.Writer
	logger   *log.Logger
}

// DownloaderOptions configures a Downloader.
type DownloaderOptions struct {
	UserAgent string
	Progress  io.Writer
	Logger    *log.Logger
}

// NewDownloader wraps client. A nil client uses NewHTTPClient defaults.
func NewDownloader(client *http.Client, opts DownloaderOptions) *Downloader {
	if client == nil {
		client = NewHTTPClient(DefaultHTTPConfig())
	}
	return &Downloader{
		client:    client,
		userAgent: opts.UserAgent,
		progress:  opts.Progress,
		logger:    opts.Logger,
	}
}

// Download GETs url into dest and returns the number of bytes written. The
// body is staged in a temporary file next to dest, so a failed transfer
// never leaves a partial dest behind.
func (d *Downloader) Download(ctx context.Context, url, dest string) (int64, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, &categorizer.OpError{Op: "acquire.mkdir", Kind: categorizer.KindIO, Path: dir, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, &categorizer.OpError{Op: "acquire.request", Kind: categorizer.KindNetwork, Err: err}
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	d.logf("downloading %s to %s", url, dest)
	resp, err := d.client.Do(req)
	if err != nil {
		return 0, &categorizer.OpError{Op: "acquire.download", Kind: categorizer.KindNetwork, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return 0, &categorizer.OpError{
			Op:   "acquire.download",
			Kind: categorizer.KindNetwork,
			Err:  fmt.Errorf("GET %s: unexpected status %s", url, resp.Status),
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.part")
	if err != nil {
		return 0, &categorizer.OpError{Op: "acquire.create_temp", Kind: categorizer.KindIO, Path: dest, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	var sink io.Writer = tmp
	var bar *progressbar.ProgressBar
	if d.progress != nil {
		bar = progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetWriter(d.progress),
			progressbar.OptionSetDescription("downloading"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(d.progress) }),
		)
		sink = io.MultiWriter(tmp, bar)
	}

	n, err := io.Copy(sink, resp.Body)
	if err != nil {
		return n, &categorizer.OpError{Op: "acquire.download", Kind: categorizer.KindNetwork, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.ContentLength >= 0 && n != resp.ContentLength {
		return n, &categorizer.OpError{
			Op:   "acquire.download",
			Kind: categorizer.KindNetwork,
			Err:  fmt.Errorf("short body: got %d of %d bytes", n, resp.ContentLength),
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	if err := tmp.Chmod(0o644); err != nil {
		return n, &categorizer.OpError{Op: "acquire.chmod", Kind: categorizer.KindIO, Path: tmpName, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return n, &categorizer.OpError{Op: "acquire.close", Kind: categorizer.KindIO, Path: tmpName, Err: err}
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return n, &categorizer.OpError{Op: "acquire.rename", Kind: categorizer.KindIO, Path: dest, Err: err}
	}
	committed = true
	d.logf("download complete (%d bytes)", n)
	return n, nil
}

func (d *Downloader) logf(format string, args ...any) {
	if d.logger != nil {
		d.logger.Infof(format, args...)
	}
}
