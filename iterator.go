package seqio

import (
	"github.com/sean-dougherty/seqio/compress"
	"github.com/sean-dougherty/seqio/fasta"
	"github.com/sean-dougherty/seqio/pna"
)

// Iterator streams the sequences of a file, one at a time, regardless of
// whether the underlying file is FASTA, FASTA+gzip, or PNA.
type Iterator struct {
	fastaReader *fasta.Reader

	pnaReader *pna.Reader
	pnaNext   int
}

// CreateSequenceIterator opens path for sequential reading. By default
// the format is sniffed from the file's leading bytes (spec §6.3); pass
// WithFileFormat to skip the sniff, or WithBaseTransform to normalize
// FASTA bases as they're read.
func CreateSequenceIterator(path string, opts ...IteratorOption) (*Iterator, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	format := cfg.format
	if format == Deduce {
		sniffed, err := sniffFormat(path)
		if err != nil {
			return nil, err
		}

		format = sniffed
	}

	if format == Pna {
		r, err := pna.Open(path)
		if err != nil {
			return nil, err
		}

		return &Iterator{pnaReader: r}, nil
	}

	codec := compress.Decompressor(compress.NewNoOpCodec())
	if format == FastaGzip {
		codec = compress.NewGzipCodec()
	}

	r, err := fasta.Open(path, cfg.transform, codec)
	if err != nil {
		return nil, err
	}

	return &Iterator{fastaReader: r}, nil
}

// Next returns the next sequence, or a nil Sequence with a nil error once
// the file is exhausted.
func (it *Iterator) Next() (*Sequence, error) {
	if it.pnaReader != nil {
		if it.pnaNext >= it.pnaReader.SequencesCount() {
			return nil, nil
		}

		index := it.pnaNext
		it.pnaNext++

		sr, err := it.pnaReader.OpenSequence(index, pna.OpenFlags{})
		if err != nil {
			return nil, err
		}

		table, err := it.pnaReader.SequenceMetadata(index)
		if err != nil {
			sr.Close()

			return nil, err
		}

		return &Sequence{pnaSeq: sr, pnaMeta: table}, nil
	}

	seq, err := it.fastaReader.Next()
	if err != nil || seq == nil {
		return nil, err
	}

	return &Sequence{fastaSeq: seq}, nil
}

// Close releases the underlying reader.
func (it *Iterator) Close() error {
	if it.pnaReader != nil {
		return it.pnaReader.Close()
	}

	return it.fastaReader.Close()
}
