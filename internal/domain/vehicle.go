package domain

// Vehicle describes the shared vehicle available at a location. Brand and
// model are both optional.
type Vehicle struct {
	ID    int64   `db:"id" json:"id"`
	Brand *string `db:"brand" json:"brand"`
	Model *string `db:"model" json:"model"`
}

type VehiclePatch struct {
	Brand *string
	Model *string
}

func (p VehiclePatch) IsEmpty() bool {
	return p.Brand == nil && p.Model == nil
}
