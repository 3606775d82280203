package compress

import "io"

// Decompressor wraps a raw byte stream with decompression, for readers.
type Decompressor interface {
	// WrapReader returns a stream yielding the decompressed bytes of r.
	WrapReader(r io.Reader) (io.ReadCloser, error)
}

// Compressor wraps a raw byte stream with compression, for writers.
type Compressor interface {
	// WrapWriter returns a stream that compresses everything written to it
	// into w. The caller must Close the returned writer to flush trailing
	// compressed data.
	WrapWriter(w io.Writer) (io.WriteCloser, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}
