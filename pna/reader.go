package pna

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/sean-dougherty/seqio/endian"
	"github.com/sean-dougherty/seqio/errs"
	"github.com/sean-dougherty/seqio/internal/pool"
	"github.com/sean-dougherty/seqio/metadata"
	"github.com/sean-dougherty/seqio/pnaformat"
)

// OpenFlags controls how a sequence reader behaves.
type OpenFlags struct {
	// IgnoreN elides N bases from Read's output entirely (spec §4.7.2).
	IgnoreN bool
}

// Reader opens a PNA file, validating its header and mmapping the region
// spanning string storage through the descriptor array for random
// access without a syscall per lookup (spec §4.6).
type Reader struct {
	path   string
	fdpool *pool.FdPool
	engine endian.EndianEngine
	header pnaformat.Header

	mmapData  []byte // the raw mmap, page-aligned start
	mmapSlack int    // bytes between the page-aligned start and the real region start

	descriptors []pnaformat.SequenceDescriptor
	fileMeta    metadata.Table
	seqMeta     []metadata.Table

	closed bool
}

// Open validates path's header and mmaps its metadata/descriptor region.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path) //nolint: gosec
	if err != nil {
		return nil, errs.ErrFileNotFound
	}
	defer f.Close()

	engine := endian.LittleEndian()

	headerBuf := make([]byte, pnaformat.HeaderSize)
	if _, err := f.ReadAt(headerBuf, 0); err != nil {
		return nil, errs.ErrIO
	}

	header, err := pnaformat.ParseHeader(headerBuf, engine)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		return nil, errs.ErrIO
	}

	regionStart := header.StringStorage.Filepos
	regionEnd := uint64(info.Size())

	pageSize := uint64(unix.Getpagesize())
	alignedStart := (regionStart / pageSize) * pageSize
	slack := int(regionStart - alignedStart) //nolint: gosec

	mmapData, err := unix.Mmap(int(f.Fd()), int64(alignedStart), int(regionEnd-alignedStart), //nolint: gosec
		unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errs.ErrIO
	}

	r := &Reader{
		path:      path,
		fdpool:    pool.NewFdPool(path),
		engine:    engine,
		header:    header,
		mmapData:  mmapData,
		mmapSlack: slack,
	}

	if err := r.loadMetadataRegion(); err != nil {
		unix.Munmap(mmapData)

		return nil, err
	}

	return r, nil
}

// fileOffset translates an absolute file position within the mmapped
// region into an index into mmapData.
func (r *Reader) fileOffset(pos uint64) []byte {
	idx := int(pos-r.header.StringStorage.Filepos) + r.mmapSlack //nolint: gosec

	return r.mmapData[idx:]
}

func (r *Reader) loadMetadataRegion() error {
	stringBlob := r.fileOffset(r.header.StringStorage.Filepos)[:r.header.StringStorage.Length]

	fileMetaBytes := r.fileOffset(r.header.FileMetadata.EntriesFilepos)
	fileMetaEntries := pnaformat.ParseMetadataEntries(fileMetaBytes, int(r.header.FileMetadata.EntriesCount), r.engine)
	r.fileMeta = metadata.New(fileMetaEntries, stringBlob)

	descBytes := r.fileOffset(r.header.SequencesFilepos)
	r.descriptors = pnaformat.ParseSequenceDescriptors(descBytes, int(r.header.SequencesCount), r.engine)

	r.seqMeta = make([]metadata.Table, len(r.descriptors))
	for i, d := range r.descriptors {
		entryBytes := r.fileOffset(d.Metadata.EntriesFilepos)
		entries := pnaformat.ParseMetadataEntries(entryBytes, int(d.Metadata.EntriesCount), r.engine)
		r.seqMeta[i] = metadata.New(entries, stringBlob)
	}

	return nil
}

// SequencesCount returns the number of sequences in the file.
func (r *Reader) SequencesCount() int {
	return len(r.descriptors)
}

// MaxSeqfragmentsCount is the largest per-sequence fragment count across
// the file, a sizing hint for callers of PackedRead.
func (r *Reader) MaxSeqfragmentsCount() uint64 {
	return r.header.MaxSeqfragmentsCount
}

// MaxPackedBasesLength is the largest per-sequence packed-byte length
// across the file, a sizing hint for callers of PackedRead.
func (r *Reader) MaxPackedBasesLength() uint64 {
	return r.header.MaxPackedBasesLength
}

// FileMetadata returns the file-level metadata table.
func (r *Reader) FileMetadata() metadata.Table {
	return r.fileMeta
}

// SequenceMetadata returns the metadata table for sequence index i.
func (r *Reader) SequenceMetadata(index int) (metadata.Table, error) {
	if index < 0 || index >= len(r.seqMeta) {
		return metadata.Table{}, errs.ErrInvalidParameter
	}

	return r.seqMeta[index], nil
}

// BasesCount returns the logical length of sequence index.
func (r *Reader) BasesCount(index int) (uint64, error) {
	if index < 0 || index >= len(r.descriptors) {
		return 0, errs.ErrInvalidParameter
	}

	return r.descriptors[index].BasesCount, nil
}

// OpenSequence returns a seekable reader over sequence index's packed
// bases, borrowing a private file handle from the reader's FdPool.
func (r *Reader) OpenSequence(index int, flags OpenFlags) (*SequenceReader, error) {
	if index < 0 || index >= len(r.descriptors) {
		return nil, errs.ErrInvalidParameter
	}

	guard, err := r.fdpool.Acquire()
	if err != nil {
		return nil, err
	}

	desc := r.descriptors[index]

	fragBytes := make([]byte, int(desc.SeqfragmentsCount)*pnaformat.SeqfragmentSize) //nolint: gosec
	if len(fragBytes) > 0 {
		if _, err := guard.File().ReadAt(fragBytes, int64(desc.SeqfragmentsFilepos)); err != nil { //nolint: gosec
			guard.Close()

			return nil, errs.ErrIO
		}
	}
	fragments := pnaformat.ParseSeqfragments(fragBytes, int(desc.SeqfragmentsCount), r.engine)

	sr := &SequenceReader{
		guard:      guard,
		desc:       desc,
		fragments:  fragments,
		ignoreN:    flags.IgnoreN,
		readCache:  pool.GetReadCacheBuffer(),
		cacheValid: false,
	}
	sr.seek(0)

	return sr, nil
}

// Close unmaps the metadata region and releases all idle pooled handles.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if err := unix.Munmap(r.mmapData); err != nil {
		return errs.ErrIO
	}

	return r.fdpool.CloseIdle()
}
