package charts

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jar0582/CSCE4600/schedplot/results"
)

const (
	ganttWidth     = 10 * vg.Inch
	ganttHeight    = 4 * vg.Inch
	ganttBarHeight = 0.8
)

// Gantt writes <dir>/<algorithm>_gantt_chart.<format> and returns its path.
func Gantt(seq results.Gantt, algorithm string, format Format, dir string) (string, error) {
	p := GanttPlot(seq, algorithm)
	path := outputPath(dir, algorithm+"_gantt_chart", format)
	if err := p.Save(ganttWidth, ganttHeight, path); err != nil {
		return "", fmt.Errorf("%w: saving %s Gantt chart", err, algorithm)
	}
	return path, nil
}

// GanttPlot lays out one unit-wide bar per time slot, one row per distinct process.
func GanttPlot(seq results.Gantt, algorithm string) *plot.Plot {
	rows, ticks := ganttRows(seq)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Scheduling - Gantt Chart", algorithm)
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Processes"
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	bars := &ganttBars{rows: rows, rowCount: len(ticks)}
	p.Add(bars)

	p.X.Min = 0
	p.X.Max = float64(len(seq))
	if len(seq) == 0 {
		p.X.Max = 1
	}
	p.Y.Min = 0
	p.Y.Max = float64(len(ticks) + 1)
	return p
}

/* ganttRows maps each slot to a row numbered 1..n in ascending PID order. */
func ganttRows(seq results.Gantt) ([]int, []plot.Tick) {
	seen := make(map[int]bool)
	pids := make([]int, 0)
	for _, pid := range seq {
		if !seen[pid] {
			seen[pid] = true
			pids = append(pids, pid)
		}
	}
	sort.Ints(pids)

	rowOf := make(map[int]int, len(pids))
	ticks := make([]plot.Tick, len(pids))
	for i, pid := range pids {
		rowOf[pid] = i + 1
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: fmt.Sprintf("P%d", pid)}
	}

	rows := make([]int, len(seq))
	for i, pid := range seq {
		rows[i] = rowOf[pid]
	}
	return rows, ticks
}

type ganttBars struct {
	rows     []int
	rowCount int
}

func (g *ganttBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for slot, row := range g.rows {
		x0, x1 := trX(float64(slot)), trX(float64(slot+1))
		y0 := trY(float64(row) - ganttBarHeight/2)
		y1 := trY(float64(row) + ganttBarHeight/2)
		pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		c.FillPolygon(rowColor(row), c.ClipPolygonXY(pts))
	}
}

func (g *ganttBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, float64(len(g.rows)), 0, float64(g.rowCount + 1)
}

func rowColor(row int) color.Color {
	return plotutil.Color(row - 1)
}
