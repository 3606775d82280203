// Package compress provides the byte-stream codec used for the FASTA+gzip
// format variant.
//
// The PNA codec never compresses its own packed-base stream — 2 bits/base is
// already the format's entire space saving, and there is no second
// compression stage to layer on top. Compression only applies on the FASTA
// side, where a byte-stream decompressor is assumed available. This package
// supplies that via klauspost/compress/gzip, a drop-in faster replacement
// for the standard library's compress/gzip.
package compress
