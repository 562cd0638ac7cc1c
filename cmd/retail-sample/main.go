package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"yashubustudio/retailsample/categorizer"
	"yashubustudio/retailsample/internal/app"
)

type cliOptions struct {
	configPath string
	debug      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "retail-sample: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "retail-sample",
		Short: "Fetch the UCI Online Retail dataset and tag products by keyword",
		Long: "With no subcommand, downloads the UCI Online Retail workbook, converts it to CSV,\n" +
			"adds product_class and product_subclass columns and removes the workbook.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			_, err = app.Run(cmd.Context(), cfg, opts.debug)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "optional YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newDownloadCmd(opts),
		newConvertCmd(opts),
		newClassifyCmd(opts),
		newDescribeCmd(),
		newRulesCmd(),
	)
	return cmd
}

func newService(opts *cliOptions) (*app.Service, error) {
	cfg, err := app.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	return app.NewService(cfg, app.NewLogger(os.Stdout, opts.debug), os.Stdout), nil
}

func newDownloadCmd(opts *cliOptions) *cobra.Command {
	var dest string
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the workbook only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}
			if dest == "" {
				dest = svc.Config().WorkbookPath()
			}
			_, err = svc.Download(cmd.Context(), dest)
			return err
		},
	}
	cmd.Flags().StringVarP(&dest, "output", "o", "", "destination file (default <destDir>/<workbookName>)")
	return cmd
}

func newConvertCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [xlsx] [csv]",
		Short: "Convert a workbook to CSV",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}
			in, out := svc.Config().WorkbookPath(), svc.Config().CSVPath()
			if len(args) > 0 {
				in = args[0]
				out = strings.TrimSuffix(in, filepath.Ext(in)) + ".csv"
			}
			if len(args) > 1 {
				out = args[1]
			}
			_, err = svc.Convert(cmd.Context(), in, out)
			return err
		},
	}
	return cmd
}

func newClassifyCmd(opts *cliOptions) *cobra.Command {
	var output string
	var summary bool
	cmd := &cobra.Command{
		Use:   "classify [csv]",
		Short: "Add product_class and product_subclass columns to a CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(opts)
			if err != nil {
				return err
			}
			in := svc.Config().CSVPath()
			if len(args) > 0 {
				in = args[0]
			}
			out := output
			if out == "" {
				out = in
			}
			stats, err := svc.Classify(cmd.Context(), in, out)
			if err != nil {
				return err
			}
			if summary {
				printSummary(cmd, stats)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of rewriting the input")
	cmd.Flags().BoolVar(&summary, "summary", false, "print per-class row counts")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe TEXT...",
		Short: "Classify descriptions given on the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := categorizer.DefaultClassifier()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DESCRIPTION\tPRODUCT_CLASS\tPRODUCT_SUBCLASS")
			for _, text := range args {
				res := c.Classify(text)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", text, res.Class, res.Subclass)
			}
			return tw.Flush()
		},
	}
}

func printSummary(cmd *cobra.Command, stats categorizer.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n==== %d rows, %d unclassified ====\n", stats.Rows, stats.Unclassified)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, lc := range stats.TopClasses() {
		fmt.Fprintf(tw, "  %s\t%d\n", lc.Label, lc.Count)
	}
	_ = tw.Flush()
}
