// Package timeline parses mem-scope-track logs into a model.Timeline.
//
// The format is line-oriented. A marker line "---<usec>" starts a new
// snapshot at the given microsecond offset; every following data line
// "<scope>|<bytes>" records one scope reading until the next marker.
package timeline

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/greenfell/memscope/internal/model"
)

// markerPrefix introduces a timestamp line; the remainder is an integer
// count of microseconds since tracking started.
const markerPrefix = "---"

// maxLineSize bounds a single log line. Scope names are call-site strings,
// so 1MB is far beyond anything the tracker emits.
const maxLineSize = 1 << 20

// MalformedLineError reports a line that does not fit the log grammar.
type MalformedLineError struct {
	Line   int    // 1-based line number
	Text   string // offending line, whitespace-trimmed
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("timeline: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Parse reads a mem-scope-track log and returns its timeline.
//
// Readings accumulate under the current timestamp (initially 0). A marker
// line flushes the accumulated readings as a snapshot at the previous
// timestamp before advancing; a trailing non-empty accumulator is flushed
// at end of input. Blank lines are ignored. A data line within a snapshot
// overwrites any earlier value for the same scope.
func Parse(r io.Reader) (model.Timeline, error) {
	var (
		tl       model.Timeline
		t        float64
		readings map[string]float64
		lineNo   int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, markerPrefix) {
			usec, err := strconv.ParseInt(line[len(markerPrefix):], 10, 64)
			if err != nil {
				return nil, &MalformedLineError{Line: lineNo, Text: line, Reason: "bad marker timestamp"}
			}
			if len(readings) > 0 {
				tl = append(tl, model.Snapshot{Time: t, Readings: readings})
				readings = nil
			}
			t = float64(usec) / 1e6
			continue
		}

		// Split on the last separator: scope names may contain '|'.
		sep := strings.LastIndexByte(line, '|')
		if sep < 0 {
			return nil, &MalformedLineError{Line: lineNo, Text: line, Reason: "missing separator"}
		}
		scope := line[:sep]
		bytes, err := strconv.ParseFloat(line[sep+1:], 64)
		if err != nil {
			return nil, &MalformedLineError{Line: lineNo, Text: line, Reason: "bad byte count"}
		}
		if readings == nil {
			readings = make(map[string]float64)
		}
		readings[scope] = bytes / 1e6 // bytes → megabytes
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(readings) > 0 {
		tl = append(tl, model.Snapshot{Time: t, Readings: readings})
	}
	return tl, nil
}

// ParseFile parses the log at path, transparently gunzipping when the name
// ends in ".gz". I/O and gzip errors are returned as-is.
func ParseFile(path string) (model.Timeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	return Parse(r)
}
