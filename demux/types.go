package demux

import (
	"time"

	"github.com/zsiec/mpegaudio/frame"
)

// Frame is one validated MPEG Audio frame recovered from the stream.
// Data holds the complete on-wire frame (header word, optional CRC, then
// payload) copied out of the scan buffer; it is not mutated after the
// Frame is returned.
type Frame struct {
	Header frame.Header
	Data   []byte
}

// Payload returns the compressed audio payload: Data minus the header
// word and the CRC when present.
func (f *Frame) Payload() []byte {
	off := frame.HeaderSize
	if f.Header.HasCRC {
		off += frame.CRCSize
	}
	return f.Data[off:]
}

// ParsedStream is the result of scanning a complete source: the frames in
// byte order of appearance plus byte accounting. BytesConsumed covers the
// whole input, framed and skipped alike; BytesSkipped counts only the
// resynchronization noise. Callers that want strict corruption intolerance
// compare BytesSkipped against their own threshold.
type ParsedStream struct {
	Frames        []Frame
	BytesConsumed int64
	BytesSkipped  int64
}

// Duration returns the total playback time of the recovered frames.
func (ps *ParsedStream) Duration() time.Duration {
	var d time.Duration
	for i := range ps.Frames {
		d += ps.Frames[i].Header.Duration()
	}
	return d
}
