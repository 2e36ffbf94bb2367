package category

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

type Category struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	Type string    `db:"type"`
}

var columns = []string{"id", "name", "type"}

func ToAnalysis(rows []Category) []analysis.Category {
	out := make([]analysis.Category, len(rows))
	for i, row := range rows {
		out[i] = analysis.Category{ID: row.ID, Name: row.Name, Type: row.Type}
	}
	return out
}
