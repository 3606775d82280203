package seqio

// Standard metadata keys shared by every Sequence regardless of its
// underlying format (spec §6.2): the record name and the free-text
// comment trailing it on a FASTA header line (empty for PNA records
// that were never round-tripped through FASTA).
const (
	KeyName    = "seqio.name"
	KeyComment = "seqio.comment"
)
