package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	p := NormalizePage(0, 0)
	assert.Equal(t, int64(1), p.Num)
	assert.Equal(t, int64(10), p.Size)

	p = NormalizePage(-3, -1)
	assert.Equal(t, int64(1), p.Num)
	assert.Equal(t, int64(10), p.Size)

	p = NormalizePage(2, 500)
	assert.Equal(t, int64(100), p.Size)

	p = NormalizePage(3, 20)
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())
}

func TestSortOrderClause(t *testing.T) {
	assert.Equal(t, "created_at DESC", Sort{}.OrderClause())
	assert.Equal(t, "view_count ASC", Sort{By: SortByViews, Asc: true}.OrderClause())
	assert.Equal(t, "duration DESC", Sort{By: SortByDuration}.OrderClause())

	// unknown keys fall back instead of reaching the database
	assert.Equal(t, "created_at DESC", Sort{By: "password; DROP TABLE"}.OrderClause())
}
