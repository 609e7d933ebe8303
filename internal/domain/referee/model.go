package referee

// Column names of the referees dimension.
const (
	IDColumn          = "referee_id"
	NameColumn        = "referee_name"
	CompetitionColumn = "competition"
)

// CategoricalColumns are interned on fetch.
var CategoricalColumns = []string{NameColumn}
