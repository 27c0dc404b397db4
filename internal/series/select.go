// Package series extracts per-scope series from a timeline and picks the
// ones worth plotting.
package series

import (
	"errors"
	"sort"

	"github.com/greenfell/memscope/internal/model"
)

// ErrEmptyTimeline is returned when no series remain after exclusion, so
// there is no peak to rank by.
var ErrEmptyTimeline = errors.New("series: timeline has no series after exclusion")

// Build gathers one series per distinct scope name in the timeline, skipping
// names in exclude. Points are appended in timeline order; series are
// returned in first-seen order.
func Build(tl model.Timeline, exclude map[string]struct{}) []model.Series {
	index := make(map[string]int)

	var out []model.Series
	for _, snap := range tl {
		// Map iteration order is random; walk names sorted so points for
		// scopes first seen in the same snapshot land in a stable order.
		names := make([]string, 0, len(snap.Readings))
		for name := range snap.Readings {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if _, skip := exclude[name]; skip {
				continue
			}
			i, seen := index[name]
			if !seen {
				i = len(out)
				index[name] = i
				out = append(out, model.Series{Label: name})
			}
			out[i].Times = append(out[i].Times, snap.Time)
			out[i].Values = append(out[i].Values, snap.Readings[name])
		}
	}
	return out
}

// Rank sorts series by peak value, descending, in place. Ties keep their
// input order (sort.SliceStable), so of two equal peaks the first-seen
// scope wins.
func Rank(s []model.Series) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Peak() > s[j].Peak()
	})
}

// Select builds, ranks, and truncates to the limit highest-peaked series.
// A limit < 0 keeps everything. Returns ErrEmptyTimeline when exclusion
// leaves nothing to rank.
func Select(tl model.Timeline, exclude map[string]struct{}, limit int) ([]model.Series, error) {
	s := Build(tl, exclude)
	if len(s) == 0 {
		return nil, ErrEmptyTimeline
	}
	Rank(s)
	if limit >= 0 && len(s) > limit {
		s = s[:limit]
	}
	return s, nil
}
