package frame

import (
	"errors"
	"fmt"
)

// Sentinel errors for header decoding. Each names the exact field or rule
// that rejected the candidate word, so callers can distinguish failure
// modes with errors.Is.
var (
	ErrSyncWord            = errors.New("frame: sync word missing")
	ErrReservedVersion     = errors.New("frame: reserved version bits")
	ErrReservedLayer       = errors.New("frame: reserved layer bits")
	ErrInvalidBitrateIndex = errors.New("frame: invalid bitrate index")
	ErrReservedSampleRate  = errors.New("frame: reserved sample-rate index")
	ErrReservedEmphasis    = errors.New("frame: reserved emphasis bits")

	// ErrProhibitedBitrate rejects Layer II (bitrate, channel mode)
	// pairings the standard forbids.
	ErrProhibitedBitrate = errors.New("frame: bitrate prohibited for channel mode")

	// ErrFreeBitrate is returned by Length when the header signals the
	// free format (bitrate index 0): the frame length is not derivable
	// from the header alone.
	ErrFreeBitrate = errors.New("frame: free bitrate, frame length undefined")

	// ErrShortHeader is returned when fewer than 4 bytes are supplied.
	ErrShortHeader = errors.New("frame: header needs 4 bytes")
)

// HeaderError records the raw 32-bit word that failed to decode along with
// the rule that rejected it. It unwraps to one of the sentinel errors.
type HeaderError struct {
	Word uint32
	Err  error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("frame: header 0x%08X: %v", e.Word, e.Err)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}
