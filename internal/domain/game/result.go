package game

// Result is a match outcome from one side's perspective.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

// ResultFromScores reads the outcome from the home perspective.
func ResultFromScores(home, away float64) Result {
	switch {
	case home > away:
		return ResultWin
	case home < away:
		return ResultLoss
	default:
		return ResultDraw
	}
}

// Complement flips the perspective: the away side wins what the home side
// loses, and a draw stays a draw.
func (r Result) Complement() Result {
	switch r {
	case ResultWin:
		return ResultLoss
	case ResultLoss:
		return ResultWin
	default:
		return ResultDraw
	}
}

// Points maps a result to league points.
func (r Result) Points() int {
	switch r {
	case ResultWin:
		return 3
	case ResultDraw:
		return 1
	default:
		return 0
	}
}
