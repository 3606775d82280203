// Command seqio-convert converts between FASTA and PNA and prints a
// PNA file's per-sequence metadata, exercising the seqio façade end to
// end.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/sean-dougherty/seqio"
	"github.com/sean-dougherty/seqio/errs"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: seqio-convert convert <input> <output>")
	fmt.Fprintln(os.Stderr, "       seqio-convert dump <input>")
	os.Exit(1)
}

func main() {
	errs.SetHandler(errs.HandlerFunc(func(error) errs.Action {
		return errs.ActionAbort
	}))

	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
	}

	switch args[0] {
	case "convert":
		if len(args) != 3 {
			usage()
		}

		convert(args[1], args[2])
	case "dump":
		if len(args) != 2 {
			usage()
		}

		dump(args[1])
	default:
		usage()
	}
}

// convert reads every sequence of inPath and writes it to outPath,
// letting the façade deduce both formats: the input's from its leading
// bytes, the output's from its extension.
// Failures go through errs.Report, which this program configured to
// abort: a conversion is all-or-nothing.
func convert(inPath, outPath string) {
	it, err := seqio.CreateSequenceIterator(inPath)
	if err != nil {
		errs.Report(err)

		return
	}
	defer it.Close()

	w, err := seqio.CreateWriter(outPath)
	if err != nil {
		errs.Report(err)

		return
	}
	defer w.Close()

	buf := make([]byte, 1<<16)
	for {
		seq, err := it.Next()
		if err != nil {
			errs.Report(err)

			return
		}
		if seq == nil {
			break
		}

		if err := w.CreateSequence(seq.Metadata()); err != nil {
			errs.Report(err)

			return
		}

		for {
			n, err := seq.Read(buf)
			if err != nil {
				errs.Report(err)

				return
			}
			if n == 0 {
				break
			}
			if _, err := w.Write(buf[:n]); err != nil {
				errs.Report(err)

				return
			}
		}

		if err := seq.Close(); err != nil {
			errs.Report(err)

			return
		}
	}
}

// dump prints every sequence's metadata, one block per record.
func dump(path string) {
	it, err := seqio.CreateSequenceIterator(path, seqio.WithFileFormat(seqio.Pna))
	if err != nil {
		errs.Report(err)

		return
	}
	defer it.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for i := 0; ; i++ {
		seq, err := it.Next()
		if err != nil {
			errs.Report(err)

			return
		}
		if seq == nil {
			break
		}

		fmt.Fprintf(out, "sequence %d:\n", i)
		for k, v := range seq.Metadata() {
			fmt.Fprintf(out, "  %s = %s\n", k, v)
		}

		if err := seq.Close(); err != nil {
			errs.Report(err)

			return
		}
	}
}
