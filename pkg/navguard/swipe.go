package navguard

import "math"

// SwipeDirection classifies a pointer gesture.
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	case SwipeNone:
		return "none"
	}
	return "unknown"
}

// DetectSwipe classifies a drag by its total displacement. Only
// decisively horizontal gestures count: |dx| must exceed both the
// threshold and the vertical component, so short taps and scrolling
// never navigate.
func DetectSwipe(dx, dy, threshold float64) SwipeDirection {
	if math.Abs(dx) <= threshold || math.Abs(dx) <= math.Abs(dy) {
		return SwipeNone
	}
	if dx < 0 {
		return SwipeLeft
	}
	return SwipeRight
}
