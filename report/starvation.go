// Package report prints console summaries of scheduling results.
package report

import (
	"fmt"
	"io"

	"github.com/jar0582/CSCE4600/schedplot/results"
)

// StarvationTarget is the reduction, in percent, that counts as significant.
const StarvationTarget = 30.0

/* Starvation prints the Round Robin starvation reduction measured against FCFS
and whether it clears StarvationTarget, given the FCFS metrics. */
func Starvation(w io.Writer, fcfs map[string]float64) error {
	reduction, ok := fcfs[results.StarvationReduction]
	if !ok {
		return fmt.Errorf("%w: %s has no %q", results.ErrMissingMetric, results.FCFS, results.StarvationReduction)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Analysis of Starvation Reduction:")
	_, _ = fmt.Fprintf(w, "Round Robin scheduling reduces starvation by approximately %.2f%% compared to FCFS in this simulation.\n", reduction)
	if reduction > StarvationTarget {
		_, _ = fmt.Fprintf(w, "This simulation demonstrates a significant reduction in starvation, exceeding the %.0f%% target.\n", StarvationTarget)
	} else {
		_, _ = fmt.Fprintf(w, "The starvation reduction is below target (%.0f%%). Consider adjusting process parameters or simulation duration.\n", StarvationTarget)
	}
	return nil
}
