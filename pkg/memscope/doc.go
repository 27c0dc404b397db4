// Package memscope parses mem-scope-track memory logs and graphs the top
// scopes by peak usage.
//
// Quick start:
//
//	tl, err := memscope.ParseFile("mem-scope-track.aB3xK9qRtZ.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = memscope.Graph(tl, "memory.png",
//	    memscope.WithLimit(10),
//	    memscope.WithExclude("total"))
//
// Graph ranks each scope by its maximum reading, keeps the top N, and writes
// a PNG line chart with one line per scope. See the memscope command for the
// CLI surface.
package memscope
