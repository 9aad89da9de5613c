package frame

import "time"

// Version identifies the MPEG Audio generation signaled by the header's
// 2-bit version field. The fourth bit pattern (01) is reserved and never
// produces a Version value.
type Version uint8

const (
	MPEG1 Version = iota
	MPEG2
	MPEG25
)

func (v Version) String() string {
	switch v {
	case MPEG1:
		return "MPEG-1"
	case MPEG2:
		return "MPEG-2"
	case MPEG25:
		return "MPEG-2.5"
	}
	return "unknown"
}

// Layer identifies the codec layer. The 00 bit pattern is reserved and
// never produces a Layer value.
type Layer uint8

const (
	LayerI Layer = iota + 1
	LayerII
	LayerIII
)

func (l Layer) String() string {
	switch l {
	case LayerI:
		return "Layer I"
	case LayerII:
		return "Layer II"
	case LayerIII:
		return "Layer III"
	}
	return "unknown"
}

// ChannelMode is the header's 2-bit channel-mode field.
type ChannelMode uint8

const (
	Stereo ChannelMode = iota
	JointStereo
	DualChannel
	SingleChannel
)

func (m ChannelMode) String() string {
	switch m {
	case Stereo:
		return "stereo"
	case JointStereo:
		return "joint stereo"
	case DualChannel:
		return "dual channel"
	case SingleChannel:
		return "mono"
	}
	return "unknown"
}

// Channels returns the number of audio channels carried by the mode.
func (m ChannelMode) Channels() int {
	if m == SingleChannel {
		return 1
	}
	return 2
}

// Emphasis is the de-emphasis the decoder should apply during synthesis.
// The 10 bit pattern is reserved and never produces an Emphasis value.
type Emphasis uint8

const (
	EmphasisNone Emphasis = iota
	EmphasisMs5015
	EmphasisCCITJ17
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisNone:
		return "none"
	case EmphasisMs5015:
		return "50/15 ms"
	case EmphasisCCITJ17:
		return "CCIT J.17"
	}
	return "unknown"
}

// ModeExtKind tags the interpretation of the header's mode-extension bits.
type ModeExtKind uint8

const (
	// ModeExtNone: channel mode is not joint stereo; the extension bits
	// carry no meaning.
	ModeExtNone ModeExtKind = iota
	// ModeExtBands: Layers I and II; the extension selects the first
	// subband carried in joint stereo.
	ModeExtBands
	// ModeExtStereoFlags: Layer III; the extension is two independent
	// stereo-coding flags.
	ModeExtStereoFlags
)

// ModeExtension is the decoded joint-stereo extension. Exactly the fields
// selected by Kind are meaningful; the rest are zero. Kept as a tagged
// struct rather than an interface so Header stays comparable.
type ModeExtension struct {
	Kind ModeExtKind

	// BandStart is 4, 8, 12, or 16 when Kind is ModeExtBands.
	BandStart uint8

	// IntensityStereo and MSStereo are set when Kind is ModeExtStereoFlags.
	IntensityStereo bool
	MSStereo        bool
}

// Header is a decoded MPEG Audio frame header. Values are only ever
// produced by ParseHeader, which rejects every reserved or prohibited
// bit combination, so a Header in hand is structurally valid.
type Header struct {
	Version     Version
	Layer       Layer
	HasCRC      bool // a 16-bit CRC follows the header word
	Bitrate     int  // bits per second; 0 signals the free/variable format
	SampleRate  int  // Hz
	Padded      bool // one extra padding byte is present
	Private     bool // informational only
	ChannelMode ChannelMode
	ModeExt     ModeExtension
	Copyrighted bool
	Original    bool
	Emphasis    Emphasis
}

// SampleCount returns the number of PCM samples one frame of this header's
// version and layer encodes per channel.
func (h Header) SampleCount() int {
	return samplesPerFrame(h.Version, h.Layer)
}

// Duration returns the playback time of one frame.
func (h Header) Duration() time.Duration {
	return time.Duration(h.SampleCount()) * time.Second / time.Duration(h.SampleRate)
}
