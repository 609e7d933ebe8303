package manager

// Column names of the managers dimension.
const (
	IDColumn          = "manager_id"
	NameColumn        = "manager_name"
	CompetitionColumn = "competition"
)

// CategoricalColumns are interned on fetch.
var CategoricalColumns = []string{NameColumn}
