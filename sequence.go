package seqio

import (
	"github.com/sean-dougherty/seqio/errs"
	"github.com/sean-dougherty/seqio/fasta"
	"github.com/sean-dougherty/seqio/metadata"
	"github.com/sean-dougherty/seqio/pna"
)

// Sequence is one record, FASTA or PNA, presented through a single
// Read/Metadata/Close surface.
type Sequence struct {
	fastaSeq *fasta.Sequence

	pnaSeq  *pna.SequenceReader
	pnaMeta metadata.Table

	closed bool
}

// Metadata returns the record's key/value pairs. For FASTA input these are
// KeyName and, when the comment is non-empty, KeyComment; for PNA input
// they are exactly the keys stored with the sequence.
func (seq *Sequence) Metadata() map[string]string {
	if seq.fastaSeq != nil {
		m := map[string]string{KeyName: seq.fastaSeq.Name()}
		if c := seq.fastaSeq.Comment(); c != "" {
			m[KeyComment] = c
		}

		return m
	}

	m := make(map[string]string, seq.pnaMeta.Len())
	for i := 0; i < seq.pnaMeta.Len(); i++ {
		k, v := seq.pnaMeta.At(i)
		m[k] = v
	}

	return m
}

// Read decodes up to len(buf) bases. Fewer than len(buf) bytes signals
// end of sequence; subsequent reads return 0.
func (seq *Sequence) Read(buf []byte) (int, error) {
	if seq.closed {
		return 0, errs.ErrInvalidState
	}

	if seq.fastaSeq != nil {
		return seq.fastaSeq.Read(buf)
	}

	return seq.pnaSeq.Read(buf)
}

// ReadAll reads the whole sequence into a buffer grown by doubling,
// starting at 4096 bytes. The returned slice excludes the trailing NUL
// the buffer is grown with (spec §6.3, §9).
func (seq *Sequence) ReadAll() ([]byte, error) {
	buf := make([]byte, 4096)
	total := 0

	for {
		if total == len(buf) {
			grown := make([]byte, len(buf)*2)
			copy(grown, buf)
			buf = grown
		}

		n, err := seq.Read(buf[total:])
		if err != nil {
			return nil, err
		}

		total += n
		if n == 0 {
			break
		}
	}

	out := make([]byte, total+1)
	copy(out, buf[:total])

	return out[:total], nil
}

// Close releases the sequence's resources.
func (seq *Sequence) Close() error {
	if seq.closed {
		return nil
	}
	seq.closed = true

	if seq.fastaSeq != nil {
		return seq.fastaSeq.Close()
	}

	return seq.pnaSeq.Close()
}
