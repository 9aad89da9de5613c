// Package demux implements MPEG Audio (MP3) elementary-stream scanning.
// It locates frame boundaries in a byte stream by sync word, decodes and
// validates each header with the frame package, and assembles the ordered
// frame sequence while resynchronizing past corrupted or misaligned bytes
// instead of failing the whole stream.
//
// The central type is [Scanner], which reads from an [io.Reader] and
// produces one validated [Frame] per call to Next. [Parse] drains a whole
// source into a [ParsedStream].
package demux
