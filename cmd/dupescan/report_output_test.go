package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"dupescan/internal/scanner"
)

func sampleReport(t *testing.T) *scanner.Report {
	t.Helper()
	return &scanner.Report{
		RunID: "test-run",
		Root:  t.TempDir(),
		Groups: []scanner.Group{
			{
				Name:   "x.txt",
				Digest: strings.Repeat("ab", 32),
				Paths:  []string{"/data/a/x.txt", "/data/b/x.txt"},
			},
		},
		TotalBytes: 10,
		TotalCount: 2,
		FilesSeen:  7,
		Elapsed:    42 * time.Millisecond,
	}
}

func TestRenderGroups(t *testing.T) {
	var buf bytes.Buffer
	renderGroups(&buf, sampleReport(t))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two path lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != `Duplicate files named "x.txt":` {
		t.Fatalf("header: got %q", lines[0])
	}
	if lines[1] != " - /data/a/x.txt" || lines[2] != " - /data/b/x.txt" {
		t.Fatalf("paths: got %q, %q", lines[1], lines[2])
	}
}

func TestRenderEstimate(t *testing.T) {
	var buf bytes.Buffer
	renderEstimate(&buf, sampleReport(t))
	requireContains(t, buf.String(), "Reclaimable space estimate: 5 bytes")
}

func TestRenderEstimateNoDuplicates(t *testing.T) {
	var buf bytes.Buffer
	renderEstimate(&buf, &scanner.Report{})
	requireContains(t, buf.String(), "No duplicate files found.")
}

func TestRenderSummaryTable(t *testing.T) {
	out := renderSummaryTable(sampleReport(t))
	requireContains(t, out, "Files scanned")
	requireContains(t, out, "7")
	requireContains(t, out, "Reclaimable estimate")
}

func TestJSONReportIncludesReclaimable(t *testing.T) {
	payload := jsonReport(sampleReport(t))
	if payload.ReclaimableBytes != 5 {
		t.Fatalf("reclaimable: got %d, want 5", payload.ReclaimableBytes)
	}
}
