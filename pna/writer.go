// Package pna implements the reader and writer for the PNA binary
// on-disk format (spec §4.6–4.9): 2-bit-packed ACGT base streams with a
// seqfragment index over the implicit N gaps, a string-deduplicating
// metadata layer, and an mmapped descriptor region for random access.
package pna

import (
	"io"
	"os"

	"github.com/sean-dougherty/seqio/endian"
	"github.com/sean-dougherty/seqio/errs"
	"github.com/sean-dougherty/seqio/internal/pool"
	"github.com/sean-dougherty/seqio/metadata"
	"github.com/sean-dougherty/seqio/pnaformat"
	"github.com/sean-dougherty/seqio/stringtable"
)

// Writer produces a PNA file. Sequences are appended in order; closing
// the writer finalizes string storage, metadata, the descriptor array,
// and rewrites the header (spec §4.9).
type Writer struct {
	file   *os.File
	engine endian.EndianEngine

	strs     *stringtable.Table
	fileMeta *metadata.Builder

	descriptors []pnaformat.SequenceDescriptor
	// seqMeta[i] is the still-unresolved metadata.Builder for descriptors[i];
	// resolved to final MetadataEntry offsets only once every sequence's
	// strings have been interned, at Close.
	seqMeta []*metadata.Builder

	active *SequenceWriter

	maxSeqfragmentsCount uint64
	maxPackedBasesLength uint64

	closed bool
}

// Create opens path for writing, reserving a zeroed header placeholder
// at offset 0 so that sequence data can be appended immediately.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path) //nolint: gosec
	if err != nil {
		return nil, errs.ErrIO
	}

	engine := endian.LittleEndian()
	placeholder := pnaformat.NewHeader()
	if err := placeholder.WriteTo(f, engine); err != nil {
		f.Close()

		return nil, errs.ErrIO
	}

	strs := stringtable.New()

	return &Writer{
		file:     f,
		engine:   engine,
		strs:     strs,
		fileMeta: metadata.NewBuilder(strs),
	}, nil
}

// SetFileMetadata records a file-level key/value pair.
func (w *Writer) SetFileMetadata(key, value string) {
	w.fileMeta.Set(key, value)
}

// CreateSequence closes any currently active sequence and begins a new
// one, interning meta's keys and values into the writer's shared string
// table.
func (w *Writer) CreateSequence(meta map[string]string) (*SequenceWriter, error) {
	if w.active != nil {
		if err := w.closeActive(); err != nil {
			return nil, err
		}
	}

	packedBasesFilepos, err := w.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, errs.ErrIO
	}

	builder := metadata.NewBuilder(w.strs)
	for k, v := range meta {
		builder.Set(k, v)
	}

	sw := &SequenceWriter{
		w:                  w,
		file:               w.file,
		packedBasesFilepos: uint64(packedBasesFilepos), //nolint: gosec
		meta:               builder,
		writeCache:         pool.GetPackedWriteBuffer(),
	}

	w.active = sw

	return sw, nil
}

func (w *Writer) closeActive() error {
	sw := w.active
	w.active = nil

	desc, err := sw.finish()
	if err != nil {
		return err
	}

	w.descriptors = append(w.descriptors, desc)
	w.seqMeta = append(w.seqMeta, sw.meta)

	if desc.SeqfragmentsCount > w.maxSeqfragmentsCount {
		w.maxSeqfragmentsCount = desc.SeqfragmentsCount
	}
	if desc.PackedBasesLength > w.maxPackedBasesLength {
		w.maxPackedBasesLength = desc.PackedBasesLength
	}

	return nil
}

// Close finalizes the active sequence (if any), writes string storage,
// per-sequence and file metadata, the descriptor array, and rewrites the
// header at offset 0 with final values.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.active != nil {
		if err := w.closeActive(); err != nil {
			return err
		}
	}

	blob, offsetByID := w.strs.Finalize()

	// Write order from here on matters: the reader mmaps everything from
	// string storage to the end of the descriptor array as one region, so
	// every section below must land at or after stringStorageFilepos.
	stringStorageFilepos, err := w.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return errs.ErrIO
	}
	if _, err := w.file.Write(blob); err != nil {
		return errs.ErrIO
	}

	for i := range w.descriptors {
		entries := w.seqMeta[i].Finalize(offsetByID)

		filepos, err := w.file.Seek(0, io.SeekCurrent)
		if err != nil {
			return errs.ErrIO
		}

		if err := writeMetadataEntries(w.file, entries, w.engine); err != nil {
			return err
		}

		w.descriptors[i].Metadata = pnaformat.MetadataRef{
			EntriesFilepos: uint64(filepos),      //nolint: gosec
			EntriesCount:   uint32(len(entries)), //nolint: gosec
		}
	}

	fileMetaEntries := w.fileMeta.Finalize(offsetByID)
	fileMetaFilepos, err := w.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return errs.ErrIO
	}
	if err := writeMetadataEntries(w.file, fileMetaEntries, w.engine); err != nil {
		return err
	}

	sequencesFilepos, err := w.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return errs.ErrIO
	}
	for _, d := range w.descriptors {
		if _, err := w.file.Write(d.Bytes(w.engine)); err != nil {
			return errs.ErrIO
		}
	}

	header := pnaformat.Header{
		Signature:            pnaformat.Signature,
		Version:              pnaformat.Version,
		SequencesFilepos:     uint64(sequencesFilepos), //nolint: gosec
		SequencesCount:       uint64(len(w.descriptors)),
		MaxSeqfragmentsCount: w.maxSeqfragmentsCount,
		MaxPackedBasesLength: w.maxPackedBasesLength,
		FileMetadata: pnaformat.MetadataRef{
			EntriesFilepos: uint64(fileMetaFilepos),      //nolint: gosec
			EntriesCount:   uint32(len(fileMetaEntries)), //nolint: gosec
		},
		StringStorage: pnaformat.StringStorageRef{
			Filepos: uint64(stringStorageFilepos), //nolint: gosec
			Length:  uint32(len(blob)),             //nolint: gosec
		},
	}

	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return errs.ErrIO
	}
	if err := header.WriteTo(w.file, w.engine); err != nil {
		return err
	}

	return w.file.Close()
}

func writeMetadataEntries(f *os.File, entries []pnaformat.MetadataEntry, engine endian.EndianEngine) error {
	for _, e := range entries {
		if _, err := f.Write(e.Bytes(engine)); err != nil {
			return errs.ErrIO
		}
	}

	return nil
}
