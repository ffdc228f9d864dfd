// Package scanner implements the duplicate-detection pipeline: a single
// recursive traversal, grouping by base name, content digests for names that
// collide, and a report of every name+content duplicate group with a
// reclaimable-space estimate.
//
// Files that share content but not a name are deliberately not duplicates
// here; the policy is duplicate by name AND content.
package scanner
