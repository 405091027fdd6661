package query

import (
	"VidTube.com/pkg/constants"
)

// Page is a normalized page window. Offset is (Num-1)*Size.
type Page struct {
	Num  int64
	Size int64
}

func NormalizePage(num, size int64) Page {
	if num <= 0 {
		num = 1
	}
	if size <= 0 {
		size = constants.DefaultLimit
	}
	if size > constants.MaxLimit {
		size = constants.MaxLimit
	}
	return Page{Num: num, Size: size}
}

func (p Page) Offset() int {
	return int((p.Num - 1) * p.Size)
}

func (p Page) Limit() int {
	return int(p.Size)
}

// VideoFilter selects published videos, optionally narrowed to an
// owner, optionally widened by a case-insensitive substring match over
// title OR description.
type VideoFilter struct {
	OwnerID int64
	Keyword string
}

// Sort keys accepted for video listings. Anything else falls back to
// newest-first by creation time.
const (
	SortByCreatedAt = "created_at"
	SortByViews     = "view_count"
	SortByDuration  = "duration"
	SortByTitle     = "title"
)

type Sort struct {
	By  string
	Asc bool
}

// OrderClause renders the sort into a SQL ORDER BY fragment against
// the whitelist above.
func (s Sort) OrderClause() string {
	col := SortByCreatedAt
	switch s.By {
	case SortByCreatedAt, SortByViews, SortByDuration, SortByTitle:
		col = s.By
	}
	dir := "DESC"
	if s.Asc {
		dir = "ASC"
	}
	return col + " " + dir
}
