// Package seqio provides a high-level façade over reading and writing
// biological sequence data in two representations: FASTA (line-oriented
// text, optionally gzip-compressed) and PNA (a binary, 2-bit-packed,
// random-access format).
//
// # Core features
//
//   - Format-agnostic iteration: CreateSequenceIterator sniffs or accepts
//     an explicit format and returns a uniform Sequence stream regardless
//     of whether the file is FASTA, FASTA+gzip, or PNA.
//   - Random access: the pna package's SequenceReader supports Seek in
//     addition to sequential Read, with an optional IgnoreN mode that
//     elides N bases entirely. The façade's Sequence reads sequentially
//     only, with N bases kept.
//   - Pooled, concurrent-safe reads: every PnaReader-backed Sequence
//     borrows its own file handle from an internal FdPool.
//   - Case normalization: the CapsGATCN base transform uppercases and
//     folds any non-ACGT byte to 'N'. It is applied to FASTA input; PNA
//     input always decodes to uppercase A, C, G, T and N.
//
// # Basic usage
//
// Iterating a file, letting the format be sniffed automatically:
//
//	it, err := seqio.CreateSequenceIterator("reads.fasta.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer it.Close()
//
//	for {
//	    seq, err := it.Next()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if seq == nil {
//	        break
//	    }
//
//	    bases, err := seq.ReadAll()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(seq.Metadata()[seqio.KeyName], len(bases))
//	    seq.Close()
//	}
//
// Converting FASTA to PNA:
//
//	it, _ := seqio.CreateSequenceIterator("in.fasta", seqio.WithBaseTransform(pnaformat.CapsGATCN))
//	defer it.Close()
//
//	w, _ := seqio.CreateWriter("out.pna")
//	defer w.Close()
//
//	for {
//	    seq, _ := it.Next()
//	    if seq == nil {
//	        break
//	    }
//	    w.CreateSequence(seq.Metadata())
//	    buf := make([]byte, 1<<16)
//	    for {
//	        n, _ := seq.Read(buf)
//	        if n == 0 {
//	            break
//	        }
//	        w.Write(buf[:n])
//	    }
//	    seq.Close()
//	}
//
// # Package structure
//
// This package is a thin convenience wrapper around pna (the binary
// codec) and fasta (the text codec). Callers who need fine-grained
// control over one format specifically can use those packages directly.
package seqio
