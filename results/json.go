package results

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

/* camelCase metric keys written by the simulator's own JSON output. */
var simulatorMetricKeys = map[string]string{
	"cpuUtilization":      CPUUtilization,
	"avgWaitingTime":      AvgWaitingTime,
	"throughput":          Throughput,
	"starvationReduction": StarvationReduction,
}

type jsonResults struct {
	GanttCharts map[string]Gantt              `json:"ganttCharts"`
	Metrics     map[string]map[string]float64 `json:"metrics"`
}

// ReadJSON decodes {"ganttCharts": {"FCFS": [...], "RR": [...]}, "metrics": {...}}.
// Metrics may be keyed by algorithm or, as the simulator writes them, by camelCase metric name.
func ReadJSON(r io.Reader) (*Results, error) {
	var raw jsonResults
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON", err)
	}

	if raw.GanttCharts == nil {
		return nil, fmt.Errorf("%w: ganttCharts", ErrMissingKey)
	}
	for _, k := range []string{"FCFS", "RR"} {
		if _, ok := raw.GanttCharts[k]; !ok {
			return nil, fmt.Errorf("%w: ganttCharts.%s", ErrMissingKey, k)
		}
	}
	if raw.Metrics == nil {
		return nil, fmt.Errorf("%w: metrics", ErrMissingKey)
	}

	metrics, err := normalizeMetrics(raw.Metrics)
	if err != nil {
		return nil, err
	}

	return &Results{
		FCFS:    raw.GanttCharts["FCFS"],
		RR:      raw.GanttCharts["RR"],
		Metrics: metrics,
	}, nil
}

func normalizeMetrics(m map[string]map[string]float64) (Metrics, error) {
	if _, ok := m[FCFS]; ok {
		return Metrics(m), nil
	}
	if _, ok := m[RoundRobin]; ok {
		return Metrics(m), nil
	}

	metrics := make(Metrics)
	for key, byAlg := range m {
		name, ok := simulatorMetricKeys[key]
		if !ok {
			return nil, fmt.Errorf("%w: metrics has neither %s nor known metric key, got %v",
				ErrMissingKey, FCFS, sortedKeys(m))
		}
		for alg, v := range byAlg {
			metrics.set(alg, name, v)
		}
	}
	return metrics, nil
}

func sortedKeys(m map[string]map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
