package results

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()
	type args struct {
		path string
	}
	tests := []struct {
		name    string
		args    args
		want    *Results
		wantErr error
	}{
		{
			name: "json",
			args: args{path: "testdata/results.json"},
			want: &Results{
				FCFS: Gantt{1, 1, 1, 2, 2, 3},
				RR:   Gantt{1, 2, 3, 1, 2, 1},
				Metrics: Metrics{
					FCFS: {
						CPUUtilization:      100,
						AvgWaitingTime:      2.33,
						Throughput:          0.5,
						StarvationReduction: 35,
					},
					RoundRobin: {
						CPUUtilization:      100,
						AvgWaitingTime:      1.5,
						Throughput:          0.5,
						StarvationReduction: 0,
					},
				},
			},
		},
		{
			name: "csv",
			args: args{path: "testdata/simulation_results.csv"},
			want: &Results{
				FCFS: Gantt{1, 1, 2, 3, 3, 3},
				RR:   Gantt{1, 2, 3, 1, 3, 3},
				Metrics: Metrics{
					FCFS: {
						CPUUtilization:      100,
						AvgWaitingTime:      12.4,
						Throughput:          0.05,
						StarvationReduction: 20.97,
					},
					RoundRobin: {
						CPUUtilization:      100,
						AvgWaitingTime:      9.8,
						Throughput:          0.05,
						StarvationReduction: 0,
					},
				},
			},
		},
		{
			name:    "unsupported extension",
			args:    args{path: "testdata/results.txt"},
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "uppercase json extension",
			args:    args{path: "testdata/RESULTS.JSON"},
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "uppercase csv extension",
			args:    args{path: "testdata/RESULTS.CSV"},
			wantErr: ErrUnsupportedFormat,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Load(tt.args.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load("testdata/does-not-exist.json")
	assert.Error(t, err)
}

func TestReadJSONMissingKeys(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{name: "no ganttCharts", input: `{"metrics": {"FCFS": {}}}`},
		{name: "no RR", input: `{"ganttCharts": {"FCFS": [1]}, "metrics": {"FCFS": {}}}`},
		{name: "no metrics", input: `{"ganttCharts": {"FCFS": [1], "RR": [1]}}`},
		{name: "unknown metrics layout", input: `{"ganttCharts": {"FCFS": [1], "RR": [1]}, "metrics": {"SJF": {}}}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadJSON(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMissingKey)
		})
	}
}

func TestReadJSONSyntaxError(t *testing.T) {
	t.Parallel()
	_, err := ReadJSON(strings.NewReader(`{"ganttCharts": `))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingKey)
}

func TestReadJSONSimulatorLayout(t *testing.T) {
	t.Parallel()
	input := `{
  "metrics": {
    "cpuUtilization": {"FCFS": 100.00, "RoundRobin": 100.00},
    "avgWaitingTime": {"FCFS": 12.40, "RoundRobin": 9.80},
    "throughput": {"FCFS": 0.05000, "RoundRobin": 0.05000},
    "starvationReduction": {"FCFS": 20.97, "RoundRobin": 0.0}
  },
  "ganttCharts": {
    "FCFS": [1,2],
    "RR": [2,1]
  }
}`
	got, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, Gantt{1, 2}, got.FCFS)
	assert.Equal(t, Gantt{2, 1}, got.RR)
	assert.Equal(t, Metrics{
		FCFS: {
			CPUUtilization:      100,
			AvgWaitingTime:      12.4,
			Throughput:          0.05,
			StarvationReduction: 20.97,
		},
		RoundRobin: {
			CPUUtilization:      100,
			AvgWaitingTime:      9.8,
			Throughput:          0.05,
			StarvationReduction: 0,
		},
	}, got.Metrics)
}

func TestReadCSVGanttAfterMetrics(t *testing.T) {
	t.Parallel()
	/* Gantt rows come after every metric row; both must be picked up. */
	input := "Metric,FCFS,RoundRobin\n" +
		"Throughput,0.1,0.2\n" +
		"Gantt Chart (FCFS):,P4,P7\n" +
		"Gantt Chart (RR):,P7,P4,P7\n"
	got, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, Gantt{4, 7}, got.FCFS)
	assert.Equal(t, Gantt{7, 4, 7}, got.RR)
	assert.Equal(t, 0.2, got.Metrics[RoundRobin][Throughput])
}

func TestReadCSVErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "bad metric", input: "Metric,FCFS,RoundRobin\nThroughput,fast,0.2\n"},
		{name: "short metric row", input: "Metric,FCFS,RoundRobin\nThroughput,0.1\n"},
		{name: "bad process id", input: "Metric,FCFS,RoundRobin\nGantt Chart (RR):,P1,Px\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestMetricsValue(t *testing.T) {
	t.Parallel()
	m := Metrics{FCFS: {Throughput: 0.5}}

	v, err := m.Value(FCFS, Throughput)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	_, err = m.Value(FCFS, CPUUtilization)
	assert.ErrorIs(t, err, ErrMissingMetric)

	_, err = m.Value(RoundRobin, Throughput)
	assert.ErrorIs(t, err, ErrMissingMetric)
}
