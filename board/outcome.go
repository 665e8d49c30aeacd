package board

type Outcome uint8

const (
	// OutcomeInProgress is when the side to move has a legal move.
	OutcomeInProgress Outcome = iota

	// OutcomeCheckmate is when the side to move has no legal move and is in check.
	OutcomeCheckmate

	// OutcomeDraw is when the side to move has no legal move and is not in check.
	// Repetition and insufficient material are not detected.
	OutcomeDraw
)

// ClassifyOutcome applies the game outcome rule to a side's move availability
// and check status.
func ClassifyOutcome(hasMoves, isCheck bool) Outcome {
	switch {
	case hasMoves:
		return OutcomeInProgress
	case isCheck:
		return OutcomeCheckmate
	default:
		return OutcomeDraw
	}
}

func (o Outcome) IsRunning() bool {
	return o == OutcomeInProgress
}

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "OutcomeInProgress"
	case OutcomeCheckmate:
		return "OutcomeCheckmate"
	case OutcomeDraw:
		return "OutcomeDraw"
	default:
		return ""
	}
}
