// Package fasta implements the line-oriented FASTA reader and writer (spec
// §4.10): a char-action state machine drives header detection and base
// extraction over a byte stream that is optionally gzip-wrapped, with a
// substream per sequence so sequences can be read out of iteration order.
package fasta

import (
	"os"

	"github.com/sean-dougherty/seqio/compress"
	"github.com/sean-dougherty/seqio/errs"
	"github.com/sean-dougherty/seqio/internal/pool"
	"github.com/sean-dougherty/seqio/pnaformat"
)

// closeCallback decouples a Sequence's lifetime from its Reader: the
// Reader holds it strongly and nulls its back-reference on its own Close,
// so a Sequence outliving its Reader is always safe to Close (spec §4.10,
// §9's cyclic sequence/iterator lifetime note).
type closeCallback struct {
	r *Reader
}

func (cb *closeCallback) sequenceClosing(seq *Sequence) {
	if cb.r == nil || cb.r.current != seq {
		return
	}

	cb.r.eosOffset = seq.tellEnd()
	cb.r.current = nil
}

func (cb *closeCallback) detach() {
	cb.r = nil
}

// Reader iterates the sequences of a FASTA file in order, one at a time.
type Reader struct {
	fdpool *pool.FdPool
	guard  *pool.Guard
	src    *source
	cursor *stream

	transform pnaformat.BaseTransform

	eosOffset int64
	current   *Sequence
	callback  *closeCallback

	closed bool
}

// Open opens path, decompressing through codec (compress.NewNoOpCodec or
// compress.NewGzipCodec), and base-transforming sequence bytes per
// transform.
func Open(path string, transform pnaformat.BaseTransform, codec compress.Decompressor) (*Reader, error) {
	fdpool := pool.NewFdPool(path)

	var file *os.File

	guard, err := fdpool.AcquireManaged(&file)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		guard.Close()

		return nil, errs.ErrIO
	}

	src := &source{guard: guard, file: file, codec: codec, size: info.Size()}

	cursor, err := newStream(src, 0)
	if err != nil {
		guard.Close()

		return nil, err
	}

	r := &Reader{
		fdpool:    fdpool,
		guard:     guard,
		src:       src,
		cursor:    cursor,
		transform: transform,
	}
	r.callback = &closeCallback{r: r}

	return r, nil
}

// Next advances to and returns the next sequence, closing out the
// previously returned one if the caller never closed it itself. Returns a
// nil Sequence, with no error, once the file is exhausted.
func (r *Reader) Next() (*Sequence, error) {
	if r.closed {
		return nil, errs.ErrInvalidState
	}

	if r.current != nil {
		r.eosOffset = r.current.tellEnd()
		r.current = nil
	}

	if err := r.cursor.seekAbs(r.eosOffset); err != nil {
		return nil, err
	}

	found, err := r.findNextHeader()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	name, comment, ok, err := r.parseNameAndComment()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	sub, err := r.cursor.createSubstream()
	if err != nil {
		return nil, err
	}

	seq := &Sequence{
		name:     name,
		comment:  comment,
		stream:   sub,
		table:    &actionTables[r.transform],
		firstCol: true,
		callback: r.callback,
	}
	r.current = seq

	return seq, nil
}

func (r *Reader) findNextHeader() (bool, error) {
	firstCol := true

	for {
		c, err := r.cursor.nextByte()
		if err != nil {
			return false, err
		}
		if c == -1 {
			return false, nil
		}

		switch {
		case c == '\n' || c == '\r':
			firstCol = true
		case c == '>' && firstCol:
			return true, nil
		default:
			firstCol = false
		}
	}
}

func (r *Reader) parseNameAndComment() (name, comment string, ok bool, err error) {
	var nameBuf, commentBuf []byte

	var last int
	for {
		c, err := r.cursor.nextByte()
		if err != nil {
			return "", "", false, err
		}
		if c == -1 {
			return "", "", false, nil
		}
		if isSpaceByte(byte(c)) {
			last = c

			break
		}

		nameBuf = append(nameBuf, byte(c))
	}

	if last != '\n' && last != '\r' {
		for {
			c, err := r.cursor.nextByte()
			if err != nil {
				return "", "", false, err
			}
			if c == -1 {
				return "", "", false, nil
			}
			if c == '\n' {
				break
			}
			if c != '\r' {
				commentBuf = append(commentBuf, byte(c))
			}
		}
	}

	return string(nameBuf), string(commentBuf), true, nil
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Close releases the reader's file handle. Any Sequence obtained from Next
// remains safely closeable afterward; its Close becomes a no-op bookkeeping
// step once the reader it belonged to is gone.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	r.callback.detach()
	r.cursor.close()

	if err := r.guard.Close(); err != nil {
		return err
	}

	return r.fdpool.CloseIdle()
}
