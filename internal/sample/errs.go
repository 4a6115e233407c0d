package sample

import "errors"

// ErrMountNotFound indicates the configured mount point has no matching
// entry in the partition table gopsutil can see (unmounted, typo'd path).
var ErrMountNotFound = errors.New("sample: mount point not found")
