package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

var (
	errMissingScores        = errors.New("home_score/away_score columns missing")
	errMissingAbbreviations = errors.New("team abbreviation columns missing")
)
