package libdiff

// Names of the tags marking entries of a diff tree. The marking tag is
// the last tag of an entry.
const (
	DeleteTag     = "delete"
	InsertTag     = "insert"
	ReplaceTag    = "replace"
	StringDiffTag = "strdiff"
)
