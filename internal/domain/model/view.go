package model

// SortCriteria selects how the board orders the visible tasks.
type SortCriteria string

const (
	SortNone     SortCriteria = ""
	SortDate     SortCriteria = "date"
	SortPriority SortCriteria = "priority"
	SortStatus   SortCriteria = "status"
)

// SortCriterias lists the selectable criteria in selector order.
var SortCriterias = []SortCriteria{SortDate, SortPriority, SortStatus}

func (c SortCriteria) IsValid() bool {
	switch c {
	case SortNone, SortDate, SortPriority, SortStatus:
		return true
	}
	return false
}

// NeedsValue reports whether the criteria moves tasks with a chosen value to the front.
func (c SortCriteria) NeedsValue() bool {
	return c == SortPriority || c == SortStatus
}

// ViewPreferences is the view state persisted between sessions.
type ViewPreferences struct {
	Search       string       `json:"search"`
	SortCriteria SortCriteria `json:"sortCriteria"`
	SortValue    string       `json:"sortValue"`
}

// IsZero reports whether nothing is worth restoring.
func (p ViewPreferences) IsZero() bool {
	return p == ViewPreferences{}
}
