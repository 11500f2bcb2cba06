// Package results loads precomputed FCFS and Round Robin scheduling results.
package results

import (
	"errors"
	"fmt"
)

/* Algorithm names used as keys in the metrics table. */
const (
	FCFS       = "FCFS"
	RoundRobin = "RoundRobin"
)

/* Metric names, in the order they are charted. */
const (
	CPUUtilization      = "CPU Utilization"
	AvgWaitingTime      = "Avg Waiting Time"
	Throughput          = "Throughput"
	StarvationReduction = "Starvation Reduction"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrMissingKey        = errors.New("missing key")
	ErrMissingMetric     = errors.New("missing metric")
)

// MetricNames lists every charted metric in display order.
var MetricNames = []string{CPUUtilization, AvgWaitingTime, Throughput, StarvationReduction}

type (
	// Gantt holds one process ID per time unit; the index is the time slot.
	Gantt []int

	// Metrics maps an algorithm name to its metric values.
	Metrics map[string]map[string]float64

	Results struct {
		FCFS    Gantt
		RR      Gantt
		Metrics Metrics
	}
)

// Value returns the metric for alg, or ErrMissingMetric when either key is absent.
func (m Metrics) Value(alg, metric string) (float64, error) {
	values, ok := m[alg]
	if !ok {
		return 0, fmt.Errorf("%w: no metrics for %s", ErrMissingMetric, alg)
	}
	v, ok := values[metric]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no %q", ErrMissingMetric, alg, metric)
	}
	return v, nil
}

func (m Metrics) set(alg, metric string, v float64) {
	if m[alg] == nil {
		m[alg] = make(map[string]float64)
	}
	m[alg][metric] = v
}
