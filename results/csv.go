package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	fcfsGanttLabel = "Gantt Chart (FCFS):"
	rrGanttLabel   = "Gantt Chart (RR):"
)

// ReadCSV parses the simulator's CSV layout: a header, one row per metric
// (name, FCFS, RoundRobin) and then the two "Gantt Chart (...):" rows of P<n> fields.
func ReadCSV(r io.Reader) (*Results, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: CSV header", ErrMissingKey)
	}
	rows = rows[1:]

	res := &Results{
		FCFS:    Gantt{},
		RR:      Gantt{},
		Metrics: Metrics{FCFS: {}, RoundRobin: {}},
	}

	/* Both passes walk the same buffered rows. */
	if err := loadCSVMetrics(rows, res.Metrics); err != nil {
		return nil, err
	}
	if err := loadCSVGantts(rows, res); err != nil {
		return nil, err
	}

	return res, nil
}

func loadCSVMetrics(rows [][]string, metrics Metrics) error {
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		switch name {
		case CPUUtilization, AvgWaitingTime, Throughput:
			if len(row) < 3 {
				return fmt.Errorf("%w: %q needs FCFS and RoundRobin values", ErrMissingMetric, name)
			}
			fcfs, err := parseMetric(name, row[1])
			if err != nil {
				return err
			}
			rr, err := parseMetric(name, row[2])
			if err != nil {
				return err
			}
			metrics.set(FCFS, name, fcfs)
			metrics.set(RoundRobin, name, rr)
		case StarvationReduction:
			if len(row) < 2 {
				return fmt.Errorf("%w: %q needs an FCFS value", ErrMissingMetric, name)
			}
			v, err := parseMetric(name, row[1])
			if err != nil {
				return err
			}
			/* Measured for RR against FCFS; not applicable to RR itself. */
			metrics.set(FCFS, name, v)
			metrics.set(RoundRobin, name, 0)
		}
	}
	return nil
}

func loadCSVGantts(rows [][]string, res *Results) error {
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		var err error
		switch strings.TrimSpace(row[0]) {
		case fcfsGanttLabel:
			res.FCFS, err = parseGantt(row[1:])
		case rrGanttLabel:
			res.RR, err = parseGantt(row[1:])
		}
		if err != nil {
			return fmt.Errorf("%s %w", row[0], err)
		}
	}
	return nil
}

func parseMetric(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parsing %q", err, name)
	}
	return v, nil
}

func parseGantt(fields []string) (Gantt, error) {
	gantt := make(Gantt, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimPrefix(field, "P"))
		if err != nil {
			return nil, fmt.Errorf("%w: process ID %q", err, field)
		}
		gantt = append(gantt, pid)
	}
	return gantt, nil
}
