package prompt

import "errors"

// Sentinel error kinds for this package.
var (
	// ErrNoToken marks a reply containing no short-id token at all.
	ErrNoToken = errors.New("no short-id token in reply")
)
