package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec wraps FASTA byte streams with gzip, backing the FastaGzip format
// variant (spec §6.3).
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewGzipCodec creates a gzip codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// WrapReader returns a stream yielding r's decompressed gzip contents.
func (GzipCodec) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// WrapWriter returns a writer that gzip-compresses everything written to it
// into w. The caller must Close the returned writer to flush the gzip
// footer.
func (GzipCodec) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
