package pna

import (
	"io"
	"os"

	"github.com/sean-dougherty/seqio/errs"
	"github.com/sean-dougherty/seqio/internal/pool"
	"github.com/sean-dougherty/seqio/metadata"
	"github.com/sean-dougherty/seqio/packer"
	"github.com/sean-dougherty/seqio/pnaformat"
)

// SequenceWriter streams a byte-oriented base sequence into 2-bit-packed
// bytes and a seqfragment list, opening and closing fragments on
// N/non-N transitions (spec §4.8).
type SequenceWriter struct {
	w    *Writer
	file *os.File

	packedBasesFilepos uint64

	seqOffset  uint64
	packedByte byte
	shift      uint8

	fragOpen bool
	frag     pnaformat.Seqfragment
	finished []pnaformat.Seqfragment

	writeCache *pool.ByteBuffer
	cacheBase  uint64 // offset within the packed-bases region (from packedBasesFilepos) of the cache's first byte

	meta *metadata.Builder

	closed bool
}

// SetMetadata records a sequence-scoped key/value pair.
func (sw *SequenceWriter) SetMetadata(key, value string) {
	sw.meta.Set(key, value)
}

// Write feeds bases through the packing state machine. Each byte is
// mapped to a 2-bit code via packer.Encode; ACGT bytes extend (or open) a
// fragment and accumulate into the current packed byte, non-ACGT bytes
// close any open fragment and leave the implicit N gap.
func (sw *SequenceWriter) Write(bases []byte) (int, error) {
	if sw.closed {
		return 0, errs.ErrInvalidState
	}

	for _, b := range bases {
		code, isACGT := packer.Encode(b)
		if !isACGT {
			sw.closeFragment()
			sw.seqOffset++

			continue
		}

		if !sw.fragOpen {
			sw.openFragment()
		} else if sw.frag.BasesCount < ^uint32(0) {
			sw.frag.BasesCount++
		} else {
			sw.closeFragment()
			sw.openFragment()
		}

		sw.packedByte |= code << sw.shift
		sw.shift += 2
		if sw.shift == 8 {
			if err := sw.emitPackedByte(); err != nil {
				return 0, err
			}
		}

		sw.seqOffset++
	}

	return len(bases), nil
}

func (sw *SequenceWriter) openFragment() {
	sw.fragOpen = true
	sw.frag = pnaformat.Seqfragment{
		SequenceOffset:    sw.seqOffset,
		PackedBasesOffset: sw.currentPackedOffset(),
		Shift:             sw.shift,
		BasesCount:        1,
	}
}

func (sw *SequenceWriter) closeFragment() {
	if !sw.fragOpen {
		return
	}

	sw.fragOpen = false
	sw.finished = append(sw.finished, sw.frag)
}

// currentPackedOffset is the byte offset, within this sequence's packed
// blob, that the next emitted byte will occupy.
func (sw *SequenceWriter) currentPackedOffset() uint64 {
	return sw.cacheBase + uint64(sw.writeCache.Len())
}

func (sw *SequenceWriter) emitPackedByte() error {
	sw.writeCache.MustWrite([]byte{sw.packedByte})
	sw.shift = 0
	sw.packedByte = 0

	if sw.writeCache.Len() == sw.writeCache.Cap() {
		return sw.flush()
	}

	return nil
}

func (sw *SequenceWriter) flush() error {
	if sw.writeCache.Len() == 0 {
		return nil
	}

	if _, err := sw.file.Write(sw.writeCache.Bytes()); err != nil {
		return errs.ErrIO
	}

	sw.cacheBase += uint64(sw.writeCache.Len())
	sw.writeCache.Reset()

	return nil
}

// finish flushes the partial packed byte (if any), writes the fragment
// array, and returns the finalized descriptor. Called by Writer when a
// sequence is closed, either explicitly or because a new one begins.
func (sw *SequenceWriter) finish() (pnaformat.SequenceDescriptor, error) {
	if sw.closed {
		return pnaformat.SequenceDescriptor{}, errs.ErrInvalidState
	}
	sw.closed = true

	if sw.shift != 0 {
		sw.writeCache.MustWrite([]byte{sw.packedByte})
		sw.shift = 0
		sw.packedByte = 0
	}

	if err := sw.flush(); err != nil {
		return pnaformat.SequenceDescriptor{}, err
	}

	sw.closeFragment()

	packedBasesLength := sw.cacheBase

	fragmentsFilepos, err := sw.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return pnaformat.SequenceDescriptor{}, errs.ErrIO
	}

	for _, f := range sw.finished {
		if _, err := sw.file.Write(f.Bytes(sw.w.engine)); err != nil {
			return pnaformat.SequenceDescriptor{}, errs.ErrIO
		}
	}

	pool.PutPackedWriteBuffer(sw.writeCache)
	sw.writeCache = nil

	return pnaformat.SequenceDescriptor{
		BasesCount:          sw.seqOffset,
		PackedBasesFilepos:  sw.packedBasesFilepos,
		PackedBasesLength:   packedBasesLength,
		SeqfragmentsFilepos: uint64(fragmentsFilepos), //nolint: gosec
		SeqfragmentsCount:   uint64(len(sw.finished)),
	}, nil
}
