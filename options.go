package seqio

import "github.com/sean-dougherty/seqio/pnaformat"

// config collects the parameters assembled from option values. It is
// only ever exercised through IteratorOption and WriterOption, which are
// assignable from the same underlying function type.
type config struct {
	format    FileFormat
	transform pnaformat.BaseTransform
}

func newConfig() config {
	return config{format: Deduce, transform: pnaformat.NoTransform}
}

// IteratorOption configures CreateSequenceIterator.
type IteratorOption func(*config)

// WriterOption configures CreateWriter.
type WriterOption func(*config)

// WithFileFormat overrides format deduction with an explicit format. The
// returned value is usable as either an IteratorOption or a WriterOption.
func WithFileFormat(f FileFormat) func(*config) {
	return func(c *config) {
		c.format = f
	}
}

// WithBaseTransform normalizes bases read from FASTA as they stream out
// of a Sequence. It has no effect on PNA input, whose packer already
// normalizes to uppercase ACGT/N (spec §4.4). The returned value is
// usable as either an IteratorOption or a WriterOption, though writers
// only consult it when producing FASTA output.
func WithBaseTransform(t pnaformat.BaseTransform) func(*config) {
	return func(c *config) {
		c.transform = t
	}
}
