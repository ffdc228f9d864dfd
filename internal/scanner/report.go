package scanner

import "time"

// Group is one set of duplicate files: every member shares the same base name
// and the same content digest.
type Group struct {
	Name   string   `json:"name"`
	Digest string   `json:"digest"`
	Paths  []string `json:"paths"`
}

// Report is the outcome of a single scan. Groups holds every duplicate set
// found; TotalBytes and TotalCount aggregate over all files in all groups.
type Report struct {
	RunID              string        `json:"run_id"`
	Root               string        `json:"root"`
	Groups             []Group       `json:"groups"`
	TotalBytes         int64         `json:"total_bytes"`
	TotalCount         int64         `json:"total_count"`
	FilesSeen          int           `json:"files_seen"`
	NamesWithConflicts int           `json:"names_with_conflicts"`
	Elapsed            time.Duration `json:"elapsed_ns"`
}

// HasDuplicates reports whether the scan found at least one duplicate group.
func (r *Report) HasDuplicates() bool {
	return len(r.Groups) > 0
}

// Reclaimable estimates the bytes freed by removing all but one copy from the
// duplicate pool. One average-sized file is treated as the original worth
// keeping; the estimate is total - total/count with integer division, not an
// exact keep-one-per-group accounting.
func (r *Report) Reclaimable() int64 {
	if r.TotalCount == 0 {
		return 0
	}
	return r.TotalBytes - r.TotalBytes/r.TotalCount
}
