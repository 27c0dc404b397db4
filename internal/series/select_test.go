package series

import (
	"errors"
	"testing"

	"github.com/greenfell/memscope/internal/model"
)

func snap(t float64, readings map[string]float64) model.Snapshot {
	return model.Snapshot{Time: t, Readings: readings}
}

func labels(s []model.Series) []string {
	out := make([]string, len(s))
	for i, ser := range s {
		out[i] = ser.Label
	}
	return out
}

func TestBuildTimelineOrder(t *testing.T) {
	tl := model.Timeline{
		snap(0, map[string]float64{"a": 1}),
		snap(1, map[string]float64{"a": 2, "b": 5}),
		snap(2, map[string]float64{"b": 3}),
	}
	s := Build(tl, nil)
	if len(s) != 2 {
		t.Fatalf("expected 2 series, got %d", len(s))
	}
	a, b := s[0], s[1]
	if a.Label != "a" || b.Label != "b" {
		t.Fatalf("expected first-seen order [a b], got %v", labels(s))
	}
	if len(a.Times) != 2 || a.Times[0] != 0 || a.Times[1] != 1 {
		t.Fatalf("unexpected times for a: %v", a.Times)
	}
	if len(a.Values) != len(a.Times) {
		t.Fatalf("times/values misaligned for a: %d vs %d", len(a.Times), len(a.Values))
	}
	// b is absent from the first snapshot: no point, no zero-fill.
	if len(b.Times) != 2 || b.Times[0] != 1 || b.Times[1] != 2 {
		t.Fatalf("unexpected times for b: %v", b.Times)
	}
}

func TestSelectExclusionAndRanking(t *testing.T) {
	tl := model.Timeline{
		snap(0, map[string]float64{"A": 1, "B": 5, "C": 3}),
		snap(1, map[string]float64{"A": 2}),
	}
	got, err := Select(tl, map[string]struct{}{"B": {}}, 2)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	// B excluded; max(C)=3 > max(A)=2.
	want := []string{"C", "A"}
	if gl := labels(got); len(gl) != 2 || gl[0] != want[0] || gl[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, gl)
	}
}

func TestSelectLimitTruncation(t *testing.T) {
	tl := model.Timeline{
		snap(0, map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5}),
	}
	got, err := Select(tl, nil, 3)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	want := []string{"e", "d", "c"}
	gl := labels(got)
	if len(gl) != 3 {
		t.Fatalf("expected 3 series, got %d", len(gl))
	}
	for i := range want {
		if gl[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gl)
		}
	}
}

func TestRankStableTies(t *testing.T) {
	tl := model.Timeline{
		snap(0, map[string]float64{"x": 2}),
		snap(1, map[string]float64{"m": 2}),
		snap(2, map[string]float64{"z": 7}),
	}
	got, err := Select(tl, nil, -1)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	// x and m tie at 2: first-seen (x) stays ahead.
	want := []string{"z", "x", "m"}
	gl := labels(got)
	for i := range want {
		if gl[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gl)
		}
	}
}

func TestSelectEmptyAfterExclusion(t *testing.T) {
	tl := model.Timeline{
		snap(0, map[string]float64{"a": 1, "b": 2}),
	}
	exclude := map[string]struct{}{"a": {}, "b": {}}
	if _, err := Select(tl, exclude, 10); !errors.Is(err, ErrEmptyTimeline) {
		t.Fatalf("expected ErrEmptyTimeline, got %v", err)
	}
}

func TestSelectEmptyTimeline(t *testing.T) {
	if _, err := Select(nil, nil, 10); !errors.Is(err, ErrEmptyTimeline) {
		t.Fatalf("expected ErrEmptyTimeline, got %v", err)
	}
}

func TestSelectLimitLargerThanSeries(t *testing.T) {
	tl := model.Timeline{snap(0, map[string]float64{"a": 1})}
	got, err := Select(tl, nil, 15)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 series, got %d", len(got))
	}
}
