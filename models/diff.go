package models

// DiffOp classifies a span of a line diff.
type DiffOp int

const (
	// DiffEqual marks lines present in both texts.
	DiffEqual DiffOp = 0

	// DiffInsert marks lines present only in the new text.
	DiffInsert DiffOp = 1

	// DiffDelete marks lines present only in the old text.
	DiffDelete DiffOp = -1
)

// String returns the conventional single-character prefix for the op.
func (op DiffOp) String() string {
	switch op {
	case DiffInsert:
		return "+"
	case DiffDelete:
		return "-"
	default:
		return " "
	}
}

// DiffSpan is a maximal run of consecutive lines sharing one DiffOp.
type DiffSpan struct {
	// Op tells whether the lines are unchanged, inserted, or deleted.
	Op DiffOp `json:"op"`

	// Lines holds the affected lines without trailing newlines.
	Lines []string `json:"lines"`
}

// Diff is a line-based difference between two plaintexts, ordered from
// the top of the texts to the bottom.
type Diff struct {
	// Spans is the ordered sequence of equal/insert/delete runs.
	Spans []DiffSpan `json:"spans"`
}

// Changed reports whether the diff contains any insert or delete span.
func (d Diff) Changed() bool {
	for _, s := range d.Spans {
		if s.Op != DiffEqual {
			return true
		}
	}
	return false
}

// Stats returns the number of inserted and deleted lines.
func (d Diff) Stats() (inserted, deleted int) {
	for _, s := range d.Spans {
		switch s.Op {
		case DiffInsert:
			inserted += len(s.Lines)
		case DiffDelete:
			deleted += len(s.Lines)
		}
	}
	return inserted, deleted
}
