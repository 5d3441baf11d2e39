package strength

// Level classifies how well a user knows a topic.
type Level string

const (
	Weak   Level = "Weak"
	Medium Level = "Medium"
	Strong Level = "Strong"
)

func (l Level) String() string {
	return string(l)
}

// Classify maps a topic's mistake frequency and redo success rate to a Level.
// Rules are ordered; the first match wins. Topics with no recorded history are
// classified with (0, 0.0), which lands on Strong.
func Classify(mistakeFreq int, redoSuccessRate float64) Level {
	switch {
	case mistakeFreq >= 5 && redoSuccessRate < 0.4:
		return Weak
	case mistakeFreq >= 3 && redoSuccessRate < 0.7:
		return Medium
	default:
		return Strong
	}
}
