package domain

// Category groups transport locations (bus stop, train station, ...).
// Deleting a category cascades to every location referencing it.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type CategoryPatch struct {
	Name *string
}

func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil
}
