package domain

// Quality is the learner's self-assessed recall score on the 0..5
// SM-2 scale, from complete blackout (0) to perfect recall (5).
type Quality int

const (
	QualityBlackout  Quality = 0
	QualityIncorrect Quality = 1
	QualityAlmost    Quality = 2
	QualityDifficult Quality = 3
	QualityHesitant  Quality = 4
	QualityPerfect   Quality = 5
)

func (q Quality) String() string {
	switch q {
	case QualityBlackout:
		return "blackout"
	case QualityIncorrect:
		return "incorrect"
	case QualityAlmost:
		return "almost"
	case QualityDifficult:
		return "difficult"
	case QualityHesitant:
		return "hesitant"
	case QualityPerfect:
		return "perfect"
	}
	return "unknown"
}

func (q Quality) IsValid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// Recalled reports whether the rating counts as a successful recall.
// Ratings below QualityDifficult reset the repetition streak.
func (q Quality) Recalled() bool {
	return q >= QualityDifficult
}

// Clamp forces the value into the valid 0..5 range.
func (q Quality) Clamp() Quality {
	if q < QualityBlackout {
		return QualityBlackout
	}
	if q > QualityPerfect {
		return QualityPerfect
	}
	return q
}

// SessionMode selects the behavior of a review session.
type SessionMode string

const (
	ModeStandard         SessionMode = "STANDARD"
	ModeQuiz             SessionMode = "QUIZ"
	ModeSpacedRepetition SessionMode = "SPACED_REPETITION"
)

func (m SessionMode) String() string { return string(m) }

func (m SessionMode) IsValid() bool {
	switch m {
	case ModeStandard, ModeQuiz, ModeSpacedRepetition:
		return true
	}
	return false
}

// ViewFilter restricts a session to a subset of the full deck.
type ViewFilter string

const (
	FilterNone      ViewFilter = "NONE"
	FilterDue       ViewFilter = "DUE"
	FilterStarred   ViewFilter = "STARRED"
	FilterIncorrect ViewFilter = "INCORRECT"
)

func (f ViewFilter) String() string { return string(f) }

func (f ViewFilter) IsValid() bool {
	switch f {
	case FilterNone, FilterDue, FilterStarred, FilterIncorrect:
		return true
	}
	return false
}

// QuizOutcome records the learner's answer to one quiz card.
type QuizOutcome string

const (
	OutcomeCorrect   QuizOutcome = "CORRECT"
	OutcomeIncorrect QuizOutcome = "INCORRECT"
	OutcomeSkip      QuizOutcome = "SKIP"
)

func (o QuizOutcome) String() string { return string(o) }

func (o QuizOutcome) IsValid() bool {
	switch o {
	case OutcomeCorrect, OutcomeIncorrect, OutcomeSkip:
		return true
	}
	return false
}

// SessionPhase is the lifecycle state of a review session.
type SessionPhase string

const (
	PhaseBrowsing     SessionPhase = "BROWSING"
	PhaseFlipped      SessionPhase = "FLIPPED"
	PhaseCompleted    SessionPhase = "COMPLETED"
	PhaseQuizComplete SessionPhase = "QUIZ_COMPLETE"
	PhaseClosed       SessionPhase = "CLOSED"
)

func (p SessionPhase) String() string { return string(p) }

func (p SessionPhase) IsValid() bool {
	switch p {
	case PhaseBrowsing, PhaseFlipped, PhaseCompleted, PhaseQuizComplete, PhaseClosed:
		return true
	}
	return false
}

// Terminal reports whether the session can accept no further reviews.
func (p SessionPhase) Terminal() bool {
	switch p {
	case PhaseCompleted, PhaseQuizComplete, PhaseClosed:
		return true
	}
	return false
}
