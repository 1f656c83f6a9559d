package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/sghaida/diperf/bench"
	"github.com/sghaida/diperf/config"
	"github.com/sghaida/diperf/report"
	"github.com/sghaida/diperf/suite"
	"github.com/sghaida/diperf/telemetry"
)

func newRunCmd(v *viper.Viper, cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every library benchmark and print the medians",
		Long: `Runs the setup/inject/teardown cycle of every library for the configured
number of rounds, interleaving libraries within each round, and prints the
median of each phase per library and variant.

The run stops at the first failing library; no partial report is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, *cfgFile)
			if err != nil {
				return err
			}
			return runBenchmarks(cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int("rounds", suite.DefaultRounds, "number of measured rounds")
	flags.String("format", config.FormatMarkdown, "output format: markdown, text or json")
	flags.String("out", "", "write the report to this file instead of stdout")
	flags.String("metrics-file", "", "also write Prometheus textfile metrics here")
	flags.StringSlice("only", nil, "run only these libraries (comma separated)")

	bindFlag(v, config.KeyRounds, flags.Lookup("rounds"))
	bindFlag(v, config.KeyFormat, flags.Lookup("format"))
	bindFlag(v, config.KeyOut, flags.Lookup("out"))
	bindFlag(v, config.KeyMetricsFile, flags.Lookup("metrics-file"))
	bindFlag(v, config.KeyOnly, flags.Lookup("only"))
	return cmd
}

func runBenchmarks(stdout io.Writer, cfg config.Config) error {
	logger, closeLog := telemetry.InitLogger(cfg.Debug, cfg.LogFile)
	defer func() { _ = closeLog() }()

	s, err := suite.New(
		suite.WithRounds(cfg.Rounds),
		suite.WithOnly(cfg.Only...),
		suite.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	results, err := s.RunTests()
	if err != nil {
		return fmt.Errorf("benchmark run invalid: %w", err)
	}

	if err := writeReport(stdout, cfg, results); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := report.WriteTextfile(cfg.MetricsFile, results); err != nil {
			return err
		}
		logger.Info("metrics written", "path", cfg.MetricsFile)
	}
	return nil
}

// writeReport renders results to cfg.Out, or to stdout when no file is set.
func writeReport(stdout io.Writer, cfg config.Config, results []bench.LibraryResult) error {
	if cfg.Out == "" {
		return renderTo(stdout, cfg.Format, results)
	}

	f, err := createReportFile(cfg.Out)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := renderTo(f, cfg.Format, results); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}

func renderTo(w io.Writer, format string, results []bench.LibraryResult) error {
	out, err := render(format, results, w)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// render produces the report body for w. Styling follows w: markdown is
// rendered through glamour only when w is a terminal, and text styles use
// a lipgloss renderer bound to w.
func render(format string, results []bench.LibraryResult, w io.Writer) (string, error) {
	switch format {
	case config.FormatJSON:
		b, err := report.JSON(results)
		if err != nil {
			return "", fmt.Errorf("encode report: %w", err)
		}
		return string(b) + "\n", nil
	case config.FormatText:
		return report.Text(results, lipgloss.NewRenderer(w)), nil
	case config.FormatMarkdown:
		md := report.Markdown(results)
		if !isTerminal(w) {
			return md, nil
		}
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err != nil {
			return "", fmt.Errorf("markdown renderer: %w", err)
		}
		return r.Render(md)
	}
	return "", fmt.Errorf("unknown format %q", format)
}

// Report file and terminal hooks, overridden in tests.
var (
	createReportFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }

	isTerminal = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
)
