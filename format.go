package seqio

import (
	"io"
	"os"
	"strings"

	"github.com/sean-dougherty/seqio/endian"
	"github.com/sean-dougherty/seqio/errs"
	"github.com/sean-dougherty/seqio/pnaformat"
)

// FileFormat selects how a path is interpreted.
type FileFormat int

const (
	// Deduce sniffs an input file's format: gzip magic, then the PNA
	// signature, else FASTA (spec §6.3). For a writer it picks the format
	// from the output path's extension.
	Deduce FileFormat = iota
	// Fasta is plain-text FASTA.
	Fasta
	// FastaGzip is gzip-wrapped FASTA.
	FastaGzip
	// Pna is the binary PNA format.
	Pna
)

// gzipMagic is the two-byte gzip member header (RFC 1952 §2.3.1).
var gzipMagic = [2]byte{0x1f, 0x8b}

// sniffFormat inspects path's leading bytes to classify it, for Deduce on
// the read side.
func sniffFormat(path string) (FileFormat, error) {
	f, err := os.Open(path) //nolint: gosec
	if err != nil {
		return 0, errs.ErrFileNotFound
	}
	defer f.Close()

	var header [8]byte
	n, err := io.ReadFull(f, header[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return 0, errs.ErrIO
	}

	if n >= 2 && header[0] == gzipMagic[0] && header[1] == gzipMagic[1] {
		return FastaGzip, nil
	}

	if n >= 8 && endian.LittleEndian().Uint64(header[:8]) == pnaformat.Signature {
		return Pna, nil
	}

	return Fasta, nil
}

// deduceFromExtension classifies path by its filename suffix, for Deduce
// on the write side (spec §6.3).
func deduceFromExtension(path string) FileFormat {
	lower := strings.ToLower(path)

	if strings.HasSuffix(lower, ".pna") {
		return Pna
	}

	gzipped := strings.HasSuffix(lower, ".gz")
	if gzipped {
		lower = strings.TrimSuffix(lower, ".gz")
	}

	switch {
	case strings.HasSuffix(lower, ".fasta"),
		strings.HasSuffix(lower, ".fa"),
		strings.HasSuffix(lower, ".fna"),
		strings.HasSuffix(lower, ".ffn"),
		strings.HasSuffix(lower, ".faa"),
		strings.HasSuffix(lower, ".frn"),
		strings.HasSuffix(lower, ".mfa"):
		if gzipped {
			return FastaGzip
		}

		return Fasta
	default:
		if gzipped {
			return FastaGzip
		}

		return Fasta
	}
}
