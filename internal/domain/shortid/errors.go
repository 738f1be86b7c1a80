package shortid

import "errors"

// Sentinel error kinds for this package.
var (
	// ErrUnknownToken marks a token that Encode never produced for the
	// roster in hand.
	ErrUnknownToken = errors.New("unknown short-id token")
)
