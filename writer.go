package seqio

import (
	"github.com/sean-dougherty/seqio/compress"
	"github.com/sean-dougherty/seqio/errs"
	"github.com/sean-dougherty/seqio/fasta"
	"github.com/sean-dougherty/seqio/pna"
	"github.com/sean-dougherty/seqio/pnaformat"
)

// Writer produces a file, FASTA or PNA, through a single
// CreateSequence/Write/Close surface.
type Writer struct {
	fastaWriter *fasta.Writer
	transform   func(byte) byte

	pnaWriter *pna.Writer
	pnaActive *pna.SequenceWriter
}

// CreateWriter creates path for writing. By default the output format is
// deduced from path's extension (spec §6.3); pass WithFileFormat to
// override it.
func CreateWriter(path string, opts ...WriterOption) (*Writer, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	format := cfg.format
	if format == Deduce {
		format = deduceFromExtension(path)
	}

	if format == Pna {
		w, err := pna.Create(path)
		if err != nil {
			return nil, err
		}

		return &Writer{pnaWriter: w}, nil
	}

	codec := compress.Compressor(compress.NewNoOpCodec())
	if format == FastaGzip {
		codec = compress.NewGzipCodec()
	}

	w, err := fasta.Create(path, codec)
	if err != nil {
		return nil, err
	}

	out := &Writer{fastaWriter: w}
	if cfg.transform != pnaformat.NoTransform {
		out.transform = cfg.transform.Apply
	}

	return out, nil
}

// CreateSequence closes out the previous record (if any) and begins a
// new one with the given metadata. FASTA output uses the KeyName and
// KeyComment entries for its header line and ignores the rest; PNA
// output stores every entry.
func (w *Writer) CreateSequence(meta map[string]string) error {
	if w.pnaWriter != nil {
		sw, err := w.pnaWriter.CreateSequence(meta)
		if err != nil {
			return err
		}

		w.pnaActive = sw

		return nil
	}

	return w.fastaWriter.CreateSequence(meta[KeyName], meta[KeyComment])
}

// Write appends bases to the currently active sequence.
func (w *Writer) Write(buf []byte) (int, error) {
	if w.pnaWriter != nil {
		if w.pnaActive == nil {
			return 0, errs.ErrInvalidState
		}

		return w.pnaActive.Write(buf)
	}

	if w.transform == nil {
		return w.fastaWriter.Write(buf)
	}

	transformed := make([]byte, len(buf))
	for i, b := range buf {
		transformed[i] = w.transform(b)
	}

	return w.fastaWriter.Write(transformed)
}

// Close finalizes the active sequence (if any) and the underlying file.
func (w *Writer) Close() error {
	if w.pnaWriter != nil {
		return w.pnaWriter.Close()
	}

	return w.fastaWriter.Close()
}
