package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"yashubustudio/retailsample/categorizer"
)

// writeMetricsFile exports the enrichment summary in the Prometheus text
// format, suitable for the node_exporter textfile collector.
func writeMetricsFile(path string, stats categorizer.Stats) error {
	reg := prometheus.NewRegistry()

	rows := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "retailsample",
		Name:      "rows_enriched",
		Help:      "Rows written by the last enrichment run.",
	})
	unclassified := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "retailsample",
		Name:      "rows_unclassified",
		Help:      "Rows that received the default class and subclass.",
	})
	classes := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "retailsample",
		Name:      "product_class_rows",
		Help:      "Rows per product class.",
	}, []string{"product_class"})
	subclasses := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "retailsample",
		Name:      "product_subclass_rows",
		Help:      "Rows per product subclass.",
	}, []string{"product_subclass"})
	finished := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "retailsample",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last enrichment run finished.",
	})
	reg.MustRegister(rows, unclassified, classes, subclasses, finished)

	rows.Set(float64(stats.Rows))
	unclassified.Set(float64(stats.Unclassified))
	for label, n := range stats.Classes {
		classes.WithLabelValues(label).Set(float64(n))
	}
	for label, n := range stats.Subclasses {
		subclasses.WithLabelValues(label).Set(float64(n))
	}
	finished.SetToCurrentTime()

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create metrics dir: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}
