package frame

import "encoding/binary"

// syncMask covers the 11 sync bits at the top of the header word. Every
// frame header starts with eleven set bits; the bits that follow are the
// version selector.
const syncMask = 0xFFE00000

// ParseHeader decodes the 4-byte big-endian MPEG Audio frame header at the
// start of buf. Reserved bit patterns and combinations the standard
// prohibits are rejected with a *HeaderError that unwraps to the matching
// sentinel; a returned Header is always structurally valid.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < 4 {
		return Header{}, ErrShortHeader
	}
	word := binary.BigEndian.Uint32(buf)

	fail := func(err error) (Header, error) {
		return Header{}, &HeaderError{Word: word, Err: err}
	}

	if word&syncMask != syncMask {
		return fail(ErrSyncWord)
	}

	var h Header

	switch word >> 19 & 0x03 {
	case 0b00:
		h.Version = MPEG25
	case 0b10:
		h.Version = MPEG2
	case 0b11:
		h.Version = MPEG1
	default: // 0b01
		return fail(ErrReservedVersion)
	}

	switch word >> 17 & 0x03 {
	case 0b01:
		h.Layer = LayerIII
	case 0b10:
		h.Layer = LayerII
	case 0b11:
		h.Layer = LayerI
	default: // 0b00
		return fail(ErrReservedLayer)
	}

	// Protection bit: 0 means a 16-bit CRC follows the header.
	h.HasCRC = word>>16&0x01 == 0

	bitrateIdx := int(word >> 12 & 0x0F)
	if bitrateIdx == 0x0F {
		return fail(ErrInvalidBitrateIndex)
	}
	h.Bitrate = bitrateKbps[bitrateColumn(h.Version, h.Layer)][bitrateIdx] * 1000

	sampleIdx := int(word >> 10 & 0x03)
	if sampleIdx == 0x03 {
		return fail(ErrReservedSampleRate)
	}
	h.SampleRate = sampleRateHz[h.Version][sampleIdx]

	h.Padded = word>>9&0x01 != 0
	h.Private = word>>8&0x01 != 0
	h.ChannelMode = ChannelMode(word >> 6 & 0x03)
	h.ModeExt = decodeModeExt(h.Layer, h.ChannelMode, uint8(word>>4&0x03))
	h.Copyrighted = word>>3&0x01 != 0
	h.Original = word>>2&0x01 != 0

	switch word & 0x03 {
	case 0b00:
		h.Emphasis = EmphasisNone
	case 0b01:
		h.Emphasis = EmphasisMs5015
	case 0b11:
		h.Emphasis = EmphasisCCITJ17
	default: // 0b10
		return fail(ErrReservedEmphasis)
	}

	if h.Layer == LayerII && !layerIIAllowed(h.Bitrate, h.ChannelMode) {
		return fail(ErrProhibitedBitrate)
	}

	return h, nil
}

// decodeModeExt interprets the 2-bit mode-extension field. It only carries
// meaning in joint stereo: Layers I/II select the first jointly coded
// subband, Layer III selects two independent stereo-coding flags.
func decodeModeExt(l Layer, mode ChannelMode, bits uint8) ModeExtension {
	if mode != JointStereo {
		return ModeExtension{}
	}
	if l == LayerIII {
		return ModeExtension{
			Kind:            ModeExtStereoFlags,
			IntensityStereo: bits&0x01 != 0,
			MSStereo:        bits&0x02 != 0,
		}
	}
	return ModeExtension{
		Kind:      ModeExtBands,
		BandStart: 4 + bits*4,
	}
}

// layerIIAllowed checks the Layer II bitrate/channel-mode restrictions:
// 32, 48, 56, and 80 kbps exist only in single channel; 224 kbps and up
// only in the two-channel modes.
func layerIIAllowed(bitrate int, mode ChannelMode) bool {
	if mode == SingleChannel {
		switch bitrate {
		case 224000, 256000, 320000, 384000:
			return false
		}
		return true
	}
	switch bitrate {
	case 32000, 48000, 56000, 80000:
		return false
	}
	return true
}

// EncodeHeader is the inverse of ParseHeader. It assumes h came from
// ParseHeader or was built with table values; field values outside the
// tables encode as index 0.
func EncodeHeader(h Header) [4]byte {
	var word uint32 = syncMask

	switch h.Version {
	case MPEG25:
		// 0b00
	case MPEG2:
		word |= 0b10 << 19
	case MPEG1:
		word |= 0b11 << 19
	}

	switch h.Layer {
	case LayerIII:
		word |= 0b01 << 17
	case LayerII:
		word |= 0b10 << 17
	case LayerI:
		word |= 0b11 << 17
	}

	if !h.HasCRC {
		word |= 1 << 16
	}

	col := bitrateColumn(h.Version, h.Layer)
	for i, kbps := range bitrateKbps[col] {
		if kbps*1000 == h.Bitrate {
			word |= uint32(i) << 12
			break
		}
	}
	for i, hz := range sampleRateHz[h.Version] {
		if hz == h.SampleRate {
			word |= uint32(i) << 10
			break
		}
	}

	if h.Padded {
		word |= 1 << 9
	}
	if h.Private {
		word |= 1 << 8
	}
	word |= uint32(h.ChannelMode) << 6
	word |= uint32(encodeModeExt(h.ModeExt)) << 4
	if h.Copyrighted {
		word |= 1 << 3
	}
	if h.Original {
		word |= 1 << 2
	}

	switch h.Emphasis {
	case EmphasisMs5015:
		word |= 0b01
	case EmphasisCCITJ17:
		word |= 0b11
	}

	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], word)
	return buf
}

func encodeModeExt(ext ModeExtension) uint8 {
	switch ext.Kind {
	case ModeExtBands:
		return (ext.BandStart - 4) / 4
	case ModeExtStereoFlags:
		var bits uint8
		if ext.IntensityStereo {
			bits |= 0x01
		}
		if ext.MSStereo {
			bits |= 0x02
		}
		return bits
	}
	return 0
}
