package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"yashubustudio/retailsample/categorizer"
	"yashubustudio/retailsample/internal/acquire"
)

// Service runs the acquisition and enrichment steps.
type Service struct {
	cfg        Config
	downloader *acquire.Downloader
	classifier *categorizer.Classifier
	logger     *log.Logger
}

// Summary describes a completed pipeline run.
type Summary struct {
	RunID         string
	WorkbookPath  string
	CSVPath       string
	BytesFetched  int64
	RowsConverted int
	Stats         categorizer.Stats
}

// NewService constructs a service. progress receives the download bar and
// may be nil.
func NewService(cfg Config, logger *log.Logger, progress io.Writer) *Service {
	cfg.ApplyDefaults()
	if !cfg.ShowProgress() {
		progress = nil
	}
	return &Service{
		cfg: cfg,
		downloader: acquire.NewDownloader(acquire.NewHTTPClient(cfg.HTTP), acquire.DownloaderOptions{
			UserAgent: cfg.HTTP.UserAgent,
			Progress:  progress,
			Logger:    logger,
		}),
		classifier: categorizer.DefaultClassifier(categorizer.WithCache(cfg.CacheSize)),
		logger:     logger,
	}
}

// Config returns the effective configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Classifier exposes the configured classifier.
func (s *Service) Classifier() *categorizer.Classifier {
	return s.classifier
}

// Run downloads the workbook, converts it to CSV, enriches the CSV in place
// and removes the workbook. The steps run in that order and the first
// failure aborts the run.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	sum := Summary{
		RunID:        uuid.NewString(),
		WorkbookPath: s.cfg.WorkbookPath(),
		CSVPath:      s.cfg.CSVPath(),
	}
	logger := s.logger
	if logger != nil {
		logger = logger.With("run", sum.RunID)
	}
	step := s.withLogger(logger)

	n, err := step.Download(ctx, sum.WorkbookPath)
	if err != nil {
		return sum, err
	}
	sum.BytesFetched = n

	rows, err := step.Convert(ctx, sum.WorkbookPath, sum.CSVPath)
	if err != nil {
		return sum, err
	}
	sum.RowsConverted = rows

	stats, err := step.Classify(ctx, sum.CSVPath, sum.CSVPath)
	if err != nil {
		return sum, err
	}
	sum.Stats = stats

	if !s.cfg.KeepWorkbook {
		if err := os.Remove(sum.WorkbookPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return sum, &categorizer.OpError{Op: "app.cleanup", Kind: categorizer.KindIO, Path: sum.WorkbookPath, Err: err}
		}
		step.logf("removed %s", sum.WorkbookPath)
	}
	step.logf("done: %d rows enriched into %s", stats.Rows, sum.CSVPath)
	return sum, nil
}

// Download fetches the configured URL to dest.
func (s *Service) Download(ctx context.Context, dest string) (int64, error) {
	s.logf("downloading UCI Online Retail dataset to %s", dest)
	return s.downloader.Download(ctx, s.cfg.URL, dest)
}

// Convert turns the workbook at xlsxPath into a CSV at csvPath.
func (s *Service) Convert(ctx context.Context, xlsxPath, csvPath string) (int, error) {
	s.logf("converting %s to %s", xlsxPath, csvPath)
	return acquire.ConvertWorkbook(ctx, xlsxPath, csvPath, acquire.ConvertOptions{
		Sheet:  s.cfg.Sheet,
		Logger: s.logger,
	})
}

// Classify enriches inPath into outPath and, when configured, writes the
// metrics textfile.
func (s *Service) Classify(ctx context.Context, inPath, outPath string) (categorizer.Stats, error) {
	enricher := categorizer.NewEnricher(s.classifier, categorizer.EnrichOptions{
		DescriptionColumn: s.cfg.DescriptionColumn,
		Logger:            s.logger,
	})
	stats, err := enricher.EnrichFile(ctx, inPath, outPath)
	if err != nil {
		return stats, err
	}
	s.logf("added %s and %s columns", categorizer.ProductClassColumn, categorizer.ProductSubclassColumn)
	for i, lc := range stats.TopClasses() {
		if i == 5 {
			break
		}
		s.debugf("class %-24s %d", lc.Label, lc.Count)
	}
	if s.cfg.MetricsFile != "" {
		if err := writeMetricsFile(s.cfg.MetricsFile, stats); err != nil {
			return stats, fmt.Errorf("metrics: %w", err)
		}
		s.logf("wrote metrics to %s", s.cfg.MetricsFile)
	}
	return stats, nil
}

func (s *Service) withLogger(logger *log.Logger) *Service {
	cp := *s
	cp.logger = logger
	return &cp
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Infof(format, args...)
	}
}

func (s *Service) debugf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Debugf(format, args...)
	}
}
