package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/jar0582/CSCE4600/schedplot/results"
)

// MetricsTable prints every metric for FCFS and Round Robin side by side.
func MetricsTable(w io.Writer, m results.Metrics) error {
	rows := make([][]string, 0, len(results.MetricNames))
	for _, metric := range results.MetricNames {
		fcfs, err := m.Value(results.FCFS, metric)
		if err != nil {
			return err
		}
		rr, err := m.Value(results.RoundRobin, metric)
		if err != nil {
			return err
		}
		rows = append(rows, []string{metric, fmt.Sprintf("%.2f", fcfs), fmt.Sprintf("%.2f", rr)})
	}

	_, _ = fmt.Fprintln(w, "Metrics comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "FCFS", "Round Robin"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()
	return nil
}
