// Package report produces the text outputs: the ranked peak summary and the
// unfreed-memory check the tracker prints at process exit.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/greenfell/memscope/internal/model"
)

// Leak is a scope still holding memory in the final snapshot.
type Leak struct {
	Scope string
	MB    float64
}

// Summary formats ranked series as a table of peak and final values.
// The input order is preserved, so ranked input yields a ranked table.
func Summary(series []model.Series) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-40s %12s %12s\n", "#", "scope", "peak", "final")
	for i, s := range series {
		fmt.Fprintf(&b, "%-4d %-40s %12s %12s\n",
			i+1, s.Label, mb(s.Peak()), mb(s.Last()))
	}
	return b.String()
}

// Unfreed returns the scopes with a nonzero reading in the timeline's final
// snapshot, largest first. An empty timeline has no leaks.
func Unfreed(tl model.Timeline) []Leak {
	if len(tl) == 0 {
		return nil
	}
	last := tl[len(tl)-1]

	var leaks []Leak
	for scope, v := range last.Readings {
		if v != 0 {
			leaks = append(leaks, Leak{Scope: scope, MB: v})
		}
	}
	sort.Slice(leaks, func(i, j int) bool {
		if leaks[i].MB != leaks[j].MB {
			return leaks[i].MB > leaks[j].MB
		}
		return leaks[i].Scope < leaks[j].Scope
	})
	return leaks
}

// FormatLeaks renders leaks in the tracker's exit-report style.
func FormatLeaks(leaks []Leak) string {
	var b strings.Builder
	b.WriteString("Unfreed memory:\n")
	for _, l := range leaks {
		fmt.Fprintf(&b, "  %s - %s\n", l.Scope, mb(l.MB))
	}
	return b.String()
}

// mb renders a megabyte quantity as a humanized byte size.
func mb(v float64) string {
	if v < 0 {
		return "-" + humanize.Bytes(uint64(-v*1e6))
	}
	return humanize.Bytes(uint64(v * 1e6))
}
