// Package digest streams file content through SHA-256 and renders the result
// as a fixed-length hex string. It is the leaf of the duplicate-detection
// pipeline: the scanner feeds it candidate paths and groups files whose
// digests match.
package digest
