package model

// Snapshot holds all scope readings captured at one point in time.
type Snapshot struct {
	Time     float64            // seconds since tracking started
	Readings map[string]float64 // scope name → megabytes
}

// Timeline is the ordered history of snapshots from one log, in the order
// they were encountered in the source. Monotonic timestamps are not enforced.
type Timeline []Snapshot
