package model

// Series is one scope's value trajectory across a timeline, extracted for
// plotting. Times and Values are aligned index-for-index; a scope absent
// from a snapshot contributes no point (no interpolation, no zero-fill).
type Series struct {
	Label  string
	Times  []float64 // seconds
	Values []float64 // megabytes
}

// Peak returns the series' maximum value, or 0 for a series with no points.
func (s Series) Peak() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Last returns the series' final value, or 0 for a series with no points.
func (s Series) Last() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.Values[len(s.Values)-1]
}
