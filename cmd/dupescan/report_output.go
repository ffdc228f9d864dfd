package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"dupescan/internal/scanner"
)

var numbers = message.NewPrinter(language.English)

// renderGroups writes one header line per duplicate group followed by one
// line per member path.
func renderGroups(w io.Writer, report *scanner.Report) {
	for _, group := range report.Groups {
		fmt.Fprintf(w, "Duplicate files named %q:\n", group.Name)
		for _, path := range group.Paths {
			fmt.Fprintf(w, " - %s\n", path)
		}
	}
}

// renderEstimate writes the closing line of the report: either the
// no-duplicates notice or the reclaimable-bytes estimate.
func renderEstimate(w io.Writer, report *scanner.Report) {
	if !report.HasDuplicates() {
		fmt.Fprintln(w, "No duplicate files found.")
		return
	}
	reclaimable := report.Reclaimable()
	fmt.Fprintf(w, "Reclaimable space estimate: %s bytes (%s)\n",
		numbers.Sprintf("%d", reclaimable), humanize.Bytes(uint64(reclaimable)))
}

// renderSummaryTable builds the scan statistics table shown on interactive runs.
func renderSummaryTable(report *scanner.Report) string {
	rows := [][2]string{
		{"Files scanned", numbers.Sprintf("%d", report.FilesSeen)},
		{"Names with conflicts", numbers.Sprintf("%d", report.NamesWithConflicts)},
		{"Duplicate groups", numbers.Sprintf("%d", len(report.Groups))},
		{"Duplicate files", numbers.Sprintf("%d", report.TotalCount)},
		{"Duplicate bytes", humanize.Bytes(uint64(report.TotalBytes))},
		{"Reclaimable estimate", humanize.Bytes(uint64(report.Reclaimable()))},
	}
	if free, err := freeSpace(report.Root); err == nil {
		rows = append(rows, [2]string{"Free space on volume", humanize.Bytes(free)})
	}
	rows = append(rows, [2]string{"Elapsed", report.Elapsed.Round(timeRounding).String()})

	return renderStatsTable("Scan summary", rows)
}

type reportJSON struct {
	*scanner.Report
	ReclaimableBytes int64 `json:"reclaimable_bytes"`
}

func jsonReport(report *scanner.Report) reportJSON {
	return reportJSON{Report: report, ReclaimableBytes: report.Reclaimable()}
}
