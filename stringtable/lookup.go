package stringtable

import "bytes"

// StringAt returns the NUL-terminated string starting at offset within
// blob, without the terminator.
func StringAt(blob []byte, offset uint32) string {
	rest := blob[offset:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		end = len(rest)
	}

	return string(rest[:end])
}
