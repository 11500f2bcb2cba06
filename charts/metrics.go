package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jar0582/CSCE4600/schedplot/results"
)

const (
	metricsWidth    = 12 * vg.Inch
	metricsHeight   = 6 * vg.Inch
	metricsBarWidth = 60 // points
)

var series = []struct {
	algorithm string
	legend    string
}{
	{algorithm: results.FCFS, legend: "FCFS"},
	{algorithm: results.RoundRobin, legend: "Round Robin"},
}

// Metrics writes <dir>/metrics_comparison_chart.<format> and returns its path.
func Metrics(m results.Metrics, format Format, dir string) (string, error) {
	p, err := MetricsPlot(m)
	if err != nil {
		return "", err
	}
	path := outputPath(dir, "metrics_comparison_chart", format)
	if err := p.Save(metricsWidth, metricsHeight, path); err != nil {
		return "", fmt.Errorf("%w: saving metrics comparison chart", err)
	}
	return path, nil
}

// MetricsPlot groups FCFS and Round Robin bars under each metric, labelled with their values.
func MetricsPlot(m results.Metrics) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Comparison of Scheduling Algorithm Metrics"
	p.Y.Label.Text = "Value"
	p.Legend.Top = true

	width := vg.Points(metricsBarWidth)
	for i, s := range series {
		values := make(plotter.Values, len(results.MetricNames))
		for j, metric := range results.MetricNames {
			v, err := m.Value(s.algorithm, metric)
			if err != nil {
				return nil, err
			}
			values[j] = v
		}

		bars, err := plotter.NewBarChart(values, width)
		if err != nil {
			return nil, fmt.Errorf("%w: %s bars", err, s.legend)
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		/* First series sits left of the category tick, second to the right. */
		offset := width * vg.Length(2*i-1) / 2
		bars.Offset = offset

		labels, err := valueLabels(values, offset)
		if err != nil {
			return nil, fmt.Errorf("%w: %s labels", err, s.legend)
		}

		p.Add(bars, labels)
		p.Legend.Add(s.legend, bars)
	}

	p.NominalX(results.MetricNames...)
	return p, nil
}

func valueLabels(values plotter.Values, offset vg.Length) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(values))
	text := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		text[i] = fmt.Sprintf("%.2f", v)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	labels.Offset = vg.Point{X: offset, Y: vg.Points(3)}
	return labels, nil
}
