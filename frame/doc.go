// Package frame implements MPEG Audio (MP3) frame-header decoding for
// Layers I, II, and III across MPEG 1, 2, and 2.5. It turns the 4-byte
// big-endian header word into a validated [Header] and computes on-wire
// frame lengths from the header's bitrate, sample rate, and padding fields.
//
// The package is pure: it performs no I/O and holds no state beyond its
// compile-time lookup tables. Stream scanning lives in the demux package.
package frame
