package scanner

import "errors"

// ErrRootNotFound marks a scan whose root path does not exist. It is the only
// failure that aborts a run; per-file errors are recovered locally.
var ErrRootNotFound = errors.New("root path does not exist")
