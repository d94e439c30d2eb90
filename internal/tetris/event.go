package tetris

// EventType identifies something notable that happened inside the engine.
type EventType int

const (
	EventStarted EventType = iota
	EventLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
	EventPaused
	EventResumed
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is a record of an engine transition. Only the fields relevant to
// the type are set.
type Event struct {
	Type  EventType
	Kind  Kind // EventLocked
	Lines int  // EventLinesCleared: rows cleared by this lock
	Level int  // EventStarted, EventLevelUp, EventGameOver
	Score int  // EventLinesCleared, EventGameOver
}
