package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jar0582/CSCE4600/schedplot/charts"
	"github.com/jar0582/CSCE4600/schedplot/config"
	"github.com/jar0582/CSCE4600/schedplot/report"
	"github.com/jar0582/CSCE4600/schedplot/results"
)

func main() {
	os.Exit(run(config.Load(), os.Args, os.Stdout, os.Stderr))
}

var ErrInvalidArgs = errors.New("invalid args")

/* run renders the charts and prints the report for args, returning the exit code. */
func run(cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	path, format, err := parseArgs(args...)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidArgs):
			_, _ = fmt.Fprintln(stderr, "Usage: schedplot <input_file_path> <output_format>")
		case errors.Is(err, charts.ErrInvalidFormat):
			_, _ = fmt.Fprintln(stderr, "Error: Output format must be 'png', 'pdf', or 'svg'.")
		default:
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}

	res, err := results.Load(path)
	if errors.Is(err, results.ErrUnsupportedFormat) {
		_, _ = fmt.Fprintln(stderr, "Error: Input file format not supported. Use .json or .csv.")
		return 1
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := render(cfg, res, format, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseArgs(args ...string) (string, charts.Format, error) {
	if len(args) != 3 {
		return "", "", fmt.Errorf("%w: want an input file and an output format", ErrInvalidArgs)
	}
	format, err := charts.ParseFormat(args[2])
	if err != nil {
		return "", "", err
	}
	return args[1], format, nil
}

func render(cfg *config.Config, res *results.Results, format charts.Format, w io.Writer) error {
	saved := make([]string, 0, 3)

	fcfs, err := charts.Gantt(res.FCFS, results.FCFS, format, cfg.OutputDir)
	if err != nil {
		return err
	}
	saved = append(saved, fcfs)

	rr, err := charts.Gantt(res.RR, results.RoundRobin, format, cfg.OutputDir)
	if err != nil {
		return err
	}
	saved = append(saved, rr)

	comparison, err := charts.Metrics(res.Metrics, format, cfg.OutputDir)
	if err != nil {
		return err
	}
	saved = append(saved, comparison)

	if err := report.MetricsTable(w, res.Metrics); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	report.Gantt(w, "First-come, first-serve", res.FCFS)
	report.Gantt(w, "Round-robin", res.RR)

	if err := report.Starvation(w, res.Metrics[results.FCFS]); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Gantt charts and metrics comparison chart saved as %s files:\n", format)
	for _, path := range saved {
		_, _ = fmt.Fprintln(w, "  -", path)
	}
	return nil
}
