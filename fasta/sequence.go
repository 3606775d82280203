package fasta

import "github.com/sean-dougherty/seqio/errs"

// Sequence is one FASTA record: a name, an optional comment, and a base
// stream read through a char-action table (spec §4.10).
type Sequence struct {
	name    string
	comment string

	stream *stream
	table  *[256]charEntry

	firstCol  bool
	eos       bool
	eosOffset int64

	callback *closeCallback

	closed bool
}

// Name is the token immediately following '>' up to the first whitespace.
func (seq *Sequence) Name() string {
	return seq.name
}

// Comment is the remainder of the header line after the name, if any.
func (seq *Sequence) Comment() string {
	return seq.comment
}

// Read decodes up to len(buf) bases, transforming each per the reader's
// BaseTransform. Returns fewer bytes than len(buf) at end of sequence;
// subsequent reads return 0.
func (seq *Sequence) Read(buf []byte) (int, error) {
	if seq.closed {
		return 0, errs.ErrInvalidState
	}
	if seq.eos {
		return 0, nil
	}

	n := 0
	for n < len(buf) {
		c, err := seq.stream.nextByte()
		if err != nil {
			return n, err
		}
		if c == -1 {
			seq.eos = true
			seq.eosOffset = seq.stream.tellAbs()

			break
		}

		entry := seq.table[c]

		var act action
		if seq.firstCol {
			act = entry.firstCol
		} else {
			act = entry.otherCol
		}

		switch act {
		case actionIgnore:
			seq.firstCol = false
		case actionNewline:
			seq.firstCol = true
		case actionAppend:
			seq.firstCol = false
			buf[n] = entry.base
			n++
		case actionHeader:
			seq.eos = true
			seq.eosOffset = seq.stream.tellAbs() - 1

			return n, nil
		}
	}

	return n, nil
}

// tellEnd returns the absolute stream offset where this sequence's record
// ends (the next record's '>' or the end of the stream), reading ahead (and restoring position) if the sequence hasn't been
// fully consumed yet.
func (seq *Sequence) tellEnd() int64 {
	if seq.eos {
		return seq.eosOffset
	}

	offset := seq.stream.tellAbs()

	scratch := make([]byte, 4096)
	for !seq.eos {
		if _, err := seq.Read(scratch); err != nil {
			break
		}
	}

	seq.eos = false
	seq.stream.seekAbs(offset) //nolint: errcheck

	return seq.eosOffset
}

// Close releases the sequence's substream and, if this sequence is still
// the reader's current one, advances the reader's cursor to this
// sequence's end so the next Next call resumes correctly.
func (seq *Sequence) Close() error {
	if seq.closed {
		return nil
	}
	seq.closed = true

	seq.callback.sequenceClosing(seq)
	seq.stream.close()

	return nil
}
