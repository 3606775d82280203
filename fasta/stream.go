package fasta

import (
	"io"
	"os"

	"github.com/sean-dougherty/seqio/compress"
	"github.com/sean-dougherty/seqio/errs"
	"github.com/sean-dougherty/seqio/internal/pool"
)

// source reopens the decompressed byte stream for one FASTA file at an
// arbitrary absolute offset, shared by every stream cursor over that file
// (spec §4.10's "shares the same underlying fd via the FdPool").
//
// guard is acquired in managed mode: file is nulled the instant the guard
// releases its handle. Every substream opens its reader through file rather
// than through guard.File() directly, so a substream that seeks, or a new
// substream created, after the owning Reader has closed fails with
// ErrInvalidState. A substream that keeps reading through the reader it
// already opened returns its cached bytes and then ErrIO, since
// Reader.Close closes the handle.
type source struct {
	guard *pool.Guard
	file  *os.File
	codec compress.Decompressor
	size  int64
}

// openFrom returns a fresh reader of the decompressed stream starting at
// decompressed-byte offset. For the no-op codec this is a direct,
// randomly-addressable slice of the file; for gzip it replays the stream
// from the beginning and discards up to offset, mirroring how the
// reference implementation's gzseek handles a backward seek.
func (s *source) openFrom(offset int64) (io.Reader, error) {
	if s.file == nil {
		return nil, errs.ErrInvalidState
	}

	if _, ok := s.codec.(compress.NoOpCodec); ok {
		return io.NewSectionReader(s.file, offset, s.size-offset), nil
	}

	raw, err := s.codec.WrapReader(io.NewSectionReader(s.file, 0, s.size))
	if err != nil {
		return nil, errs.ErrIO
	}

	if offset > 0 {
		if _, err := io.CopyN(io.Discard, raw, offset); err != nil {
			return nil, errs.ErrIO
		}
	}

	return raw, nil
}

// stream is a cached byte-at-a-time cursor over a source's decompressed
// contents. Creating a substream snapshots the cursor's current absolute
// position into a brand new stream sharing the same source (spec §4.10).
type stream struct {
	src *source
	r   io.Reader

	cache      *pool.ByteBuffer
	cacheIdx   int
	readOffset int64 // decompressed offset of cache.Bytes()[0]
	eof        bool
}

func newStream(src *source, offset int64) (*stream, error) {
	r, err := src.openFrom(offset)
	if err != nil {
		return nil, err
	}

	return &stream{src: src, r: r, readOffset: offset, cache: pool.GetLineBuffer()}, nil
}

// nextByte returns the next decompressed byte, or -1 at end of stream.
func (s *stream) nextByte() (int, error) {
	if s.eof {
		return -1, nil
	}

	if s.cacheIdx == s.cache.Len() {
		s.readOffset += int64(s.cache.Len())

		buf := s.cache.Slice(0, s.cache.Cap())
		n, err := s.r.Read(buf)
		if n == 0 {
			s.eof = true
			if err != nil && err != io.EOF {
				return -1, errs.ErrIO
			}

			return -1, nil
		}

		s.cache.SetLength(n)
		s.cacheIdx = 0
	}

	c := s.cache.Bytes()[s.cacheIdx]
	s.cacheIdx++

	return int(c), nil
}

// tellAbs returns the absolute decompressed-stream offset of the next
// unread byte.
func (s *stream) tellAbs() int64 {
	return s.readOffset + int64(s.cacheIdx)
}

// seekAbs repositions the cursor to an absolute decompressed-stream offset.
func (s *stream) seekAbs(offset int64) error {
	r, err := s.src.openFrom(offset)
	if err != nil {
		return err
	}

	s.r = r
	s.readOffset = offset
	s.cacheIdx = 0
	s.cache.Reset()
	s.eof = false

	return nil
}

// createSubstream returns a new, independent cursor starting at this one's
// current position.
func (s *stream) createSubstream() (*stream, error) {
	return newStream(s.src, s.tellAbs())
}

func (s *stream) close() {
	if rc, ok := s.r.(io.Closer); ok {
		rc.Close()
	}

	pool.PutLineBuffer(s.cache)
	s.cache = nil
}
