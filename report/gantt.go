package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jar0582/CSCE4600/schedplot/results"
)

// TimeSlice is a run of consecutive slots given to one process.
type TimeSlice struct {
	PID   int
	Start int
	Stop  int
}

// Slices collapses a Gantt sequence into runs of the same process.
func Slices(seq results.Gantt) []TimeSlice {
	slices := make([]TimeSlice, 0)
	for slot, pid := range seq {
		if n := len(slices); n > 0 && slices[n-1].PID == pid {
			slices[n-1].Stop = slot + 1
			continue
		}
		slices = append(slices, TimeSlice{PID: pid, Start: slot, Stop: slot + 1})
	}
	return slices
}

// Gantt prints a titled text timeline of seq.
func Gantt(w io.Writer, title string, seq results.Gantt) {
	outputTitle(w, title)
	outputGantt(w, Slices(seq))
}

/* outputTitle centers title over a rule twice its width. */
func outputTitle(w io.Writer, title string) {
	rule := strings.Repeat("-", len(title)*2)
	_, _ = fmt.Fprintf(w, "%s\n%*s\n%s\n", rule, len(title)/2+len(title), title, rule)
}

func outputGantt(w io.Writer, gantt []TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprintf("P%d", gantt[i].PID)
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}
