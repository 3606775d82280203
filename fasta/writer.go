package fasta

import (
	"io"
	"os"

	"github.com/sean-dougherty/seqio/compress"
	"github.com/sean-dougherty/seqio/errs"
)

// lineWidth is the writer's fixed wrap column (spec §4.10, §6.2).
const lineWidth = 80

// Writer emits FASTA records, wrapping sequence lines at lineWidth
// columns.
type Writer struct {
	file *os.File
	out  io.WriteCloser

	active bool
	column int

	closed bool
}

// Create opens path for writing, compressing through codec
// (compress.NewNoOpCodec or compress.NewGzipCodec).
func Create(path string, codec compress.Compressor) (*Writer, error) {
	f, err := os.Create(path) //nolint: gosec
	if err != nil {
		return nil, errs.ErrIO
	}

	out, err := codec.WrapWriter(f)
	if err != nil {
		f.Close()

		return nil, errs.ErrIO
	}

	return &Writer{file: f, out: out}, nil
}

// CreateSequence closes out the previous record's line (if any) and emits
// a new header line.
func (w *Writer) CreateSequence(name, comment string) error {
	if w.closed {
		return errs.ErrInvalidState
	}

	if w.active && w.column > 0 {
		if _, err := w.out.Write([]byte{'\n'}); err != nil {
			return errs.ErrIO
		}
	}

	header := ">" + name
	if comment != "" {
		header += " " + comment
	}
	header += "\n"

	if _, err := w.out.Write([]byte(header)); err != nil {
		return errs.ErrIO
	}

	w.column = 0
	w.active = true

	return nil
}

// Write emits buf's bytes in runs of up to (lineWidth - column), writing a
// newline only when a run fills the line. A run that falls short of
// lineWidth leaves column advanced for the next Write call to continue
// from, so a sequence written across several calls wraps the same as one
// written in a single call.
func (w *Writer) Write(buf []byte) (int, error) {
	if !w.active {
		return 0, errs.ErrInvalidState
	}

	written := 0
	for written < len(buf) {
		run := lineWidth - w.column
		if remaining := len(buf) - written; run > remaining {
			run = remaining
		}

		if _, err := w.out.Write(buf[written : written+run]); err != nil {
			return written, errs.ErrIO
		}

		written += run
		w.column += run

		if w.column == lineWidth {
			if _, err := w.out.Write([]byte{'\n'}); err != nil {
				return written, errs.ErrIO
			}
			w.column = 0
		}
	}

	return written, nil
}

// Close flushes the trailing partial line (if any), flushes the
// compressor (if any trailer is pending), and closes the underlying
// file. Idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.active && w.column > 0 {
		if _, err := w.out.Write([]byte{'\n'}); err != nil {
			return errs.ErrIO
		}
		w.column = 0
	}

	if err := w.out.Close(); err != nil {
		return errs.ErrIO
	}

	return w.file.Close()
}
