package stadium

// Column names of the stadia dimension.
const (
	IDColumn          = "stadium_id"
	NameColumn        = "stadium_name"
	CompetitionColumn = "competition"
)
