package pna

import (
	"io"

	"github.com/sean-dougherty/seqio/errs"
	"github.com/sean-dougherty/seqio/fragment"
	"github.com/sean-dougherty/seqio/internal/pool"
	"github.com/sean-dougherty/seqio/packer"
	"github.com/sean-dougherty/seqio/pnaformat"
)

// SequenceReader is a seekable, optionally N-skipping byte stream over
// one packed sequence (spec §4.7).
type SequenceReader struct {
	guard *pool.Guard
	desc  pnaformat.SequenceDescriptor

	fragments   fragment.Index
	nextFragIdx int // index of the next fragment at or after seqOffset, len(fragments) if none

	seqOffset uint64
	shift     uint8

	// curPackedOffset is the packed-byte offset, relative to
	// desc.PackedBasesFilepos, that the next decoded base lives at.
	curPackedOffset uint64

	ignoreN bool

	readCache  *pool.ByteBuffer
	cacheValid bool
	// cacheBase is the packed-byte offset readCache[0] corresponds to.
	cacheBase uint64

	closed bool
}

// Seek repositions the reader to logical base offset. Offsets beyond
// bases_count position the reader past end; subsequent reads yield 0
// bytes.
func (sr *SequenceReader) Seek(offset uint64) {
	sr.seek(offset)
}

func (sr *SequenceReader) seek(offset uint64) {
	sr.seqOffset = offset
	sr.cacheValid = false

	idx, ok := sr.fragments.FindNextIndex(offset)
	if !ok {
		sr.nextFragIdx = len(sr.fragments)
		sr.shift = 0
		sr.curPackedOffset = sr.desc.PackedBasesLength

		return
	}

	sr.nextFragIdx = idx
	frag := sr.fragments[idx]

	if offset < frag.SequenceOffset {
		sr.shift = frag.Shift
		sr.curPackedOffset = frag.PackedBasesOffset

		return
	}

	rel := offset - frag.SequenceOffset
	firstBaseShift := uint64(frag.Shift) / 2
	sr.shift = uint8(((firstBaseShift + rel) % 4) * 2) //nolint: gosec

	nfirstbyte := (4 - firstBaseShift) % 4
	packedOffset := frag.PackedBasesOffset
	if rel >= nfirstbyte {
		skip := (rel - nfirstbyte) / 4
		if nfirstbyte > 0 {
			skip++
		}
		packedOffset += skip
	}
	sr.curPackedOffset = packedOffset
}

// byteAt returns the packed byte at packed-byte offset off within this
// sequence's blob, filling the read cache on a miss.
func (sr *SequenceReader) byteAt(off uint64) (byte, error) {
	if sr.cacheValid && off >= sr.cacheBase && off < sr.cacheBase+uint64(sr.readCache.Len()) {
		return sr.readCache.Bytes()[off-sr.cacheBase], nil
	}

	if off >= sr.desc.PackedBasesLength {
		return 0, errs.ErrSequenceExhausted
	}

	filePos := int64(sr.desc.PackedBasesFilepos + off) //nolint: gosec

	capBytes := sr.readCache.Cap()
	if remaining := sr.desc.PackedBasesLength - off; uint64(capBytes) > remaining {
		capBytes = int(remaining) //nolint: gosec
	}

	buf := sr.readCache.Slice(0, capBytes)

	n, err := sr.guard.File().ReadAt(buf, filePos)
	if err != nil && err != io.EOF {
		return 0, errs.ErrIO
	}
	if n == 0 {
		return 0, errs.ErrSequenceExhausted
	}

	sr.readCache.SetLength(n)
	sr.cacheBase = off
	sr.cacheValid = true

	return sr.readCache.Bytes()[0], nil
}

// Read decodes up to len(buf) bases from the current position, N-gaps
// included unless IgnoreN was set on open (spec §4.7.2). It returns the
// number of bytes written; fewer than len(buf) signals end of sequence.
func (sr *SequenceReader) Read(buf []byte) (int, error) {
	if sr.closed {
		return 0, errs.ErrInvalidState
	}

	end := sr.seqOffset + uint64(len(buf))
	if end > sr.desc.BasesCount {
		end = sr.desc.BasesCount
	}

	written := 0

	for sr.seqOffset < end {
		var next *pnaformat.Seqfragment
		if sr.nextFragIdx < len(sr.fragments) {
			next = &sr.fragments[sr.nextFragIdx]
		}

		inGap := next == nil || sr.seqOffset < next.SequenceOffset
		if inGap {
			gapEnd := end
			if next != nil && next.SequenceOffset < gapEnd {
				gapEnd = next.SequenceOffset
			}
			ncount := gapEnd - sr.seqOffset

			if sr.ignoreN {
				sr.seqOffset += ncount
				if end < sr.desc.BasesCount {
					end += ncount
					if end > sr.desc.BasesCount {
						end = sr.desc.BasesCount
					}
				}

				continue
			}

			for i := range buf[written : written+int(ncount)] { //nolint: gosec
				buf[written+i] = 'N'
			}
			written += int(ncount) //nolint: gosec
			sr.seqOffset += ncount

			continue
		}

		// Inside a fragment: decode a head run one base at a time until
		// shift==0, then aligned 4-base chunks, then a tail.
		fragEnd := next.End()
		windowEnd := end
		if fragEnd < windowEnd {
			windowEnd = fragEnd
		}

		for sr.seqOffset < windowEnd {
			if sr.shift != 0 || windowEnd-sr.seqOffset < 4 {
				b, err := sr.byteAt(sr.curPackedOffset)
				if err != nil {
					return written, err
				}

				bases := packer.Unpack(b)
				buf[written] = bases[sr.shift/2]
				written++
				sr.seqOffset++
				sr.shift += 2
				if sr.shift == 8 {
					sr.shift = 0
					sr.curPackedOffset++
				}

				continue
			}

			// Aligned middle: one packed byte decodes to four bases.
			b, err := sr.byteAt(sr.curPackedOffset)
			if err != nil {
				return written, err
			}

			bases := packer.Unpack(b)
			copy(buf[written:written+4], bases[:])
			written += 4
			sr.seqOffset += 4
			sr.curPackedOffset++
		}

		if sr.seqOffset >= fragEnd {
			sr.nextFragIdx++
		}
	}

	return written, nil
}

// PackedRead performs a bulk copy of the sequence's raw packed region and
// fragment list into caller-supplied storage, for callers that decode
// themselves. Fails if out is smaller than the packed region.
func (sr *SequenceReader) PackedRead(out []byte) (basesCount uint64, fragments []pnaformat.Seqfragment, packedBytes int, err error) {
	if uint64(len(out)) < sr.desc.PackedBasesLength {
		return 0, nil, 0, errs.ErrIO
	}

	n, err := sr.guard.File().ReadAt(out[:sr.desc.PackedBasesLength], int64(sr.desc.PackedBasesFilepos)) //nolint: gosec
	if err != nil && err != io.EOF {
		return 0, nil, 0, errs.ErrIO
	}

	return sr.desc.BasesCount, sr.fragments, n, nil
}

// Close releases the reader's borrowed file handle back to the FdPool.
func (sr *SequenceReader) Close() error {
	if sr.closed {
		return nil
	}
	sr.closed = true

	pool.PutReadCacheBuffer(sr.readCache)
	sr.readCache = nil

	return sr.guard.Close()
}
