package memscope

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = "---1000000\nheap|5000000\nstack|1000000\n---2000000\nheap|3000000\n"

func TestParse(t *testing.T) {
	tl, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tl) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(tl))
	}
	if tl[0].Time != 1.0 || tl[0].Readings["heap"] != 5.0 {
		t.Fatalf("unexpected first snapshot: %+v", tl[0])
	}
	if tl[1].Time != 2.0 || tl[1].Readings["heap"] != 3.0 {
		t.Fatalf("unexpected second snapshot: %+v", tl[1])
	}
}

func TestGraph(t *testing.T) {
	tl, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out := filepath.Join(t.TempDir(), "memory.png")
	if err := Graph(tl, out, WithLimit(1)); err != nil {
		t.Fatalf("Graph: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Fatal("expected PNG output")
	}
}

func TestGraphAllExcluded(t *testing.T) {
	tl, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out := filepath.Join(t.TempDir(), "memory.png")
	err = Graph(tl, out, WithExclude("heap", "stack"))
	if !errors.Is(err, ErrEmptyTimeline) {
		t.Fatalf("expected ErrEmptyTimeline, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatal("expected no output file when selection fails")
	}
}

func TestGraphLogScale(t *testing.T) {
	tl, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out := filepath.Join(t.TempDir(), "memory.png")
	if err := Graph(tl, out, WithLogScale()); err != nil {
		t.Fatalf("Graph: %v", err)
	}
}
