package service

// StateBroadcaster pushes serialized session state to any display
// collaborators watching a session. Delivery is fire-and-forget: a slow or
// absent display must never block or fail a tool call.
type StateBroadcaster interface {
	BroadcastState(sessionId string, event string, payload interface{})
}

// noopBroadcaster is used when no display transport is wired (tests, CLI).
type noopBroadcaster struct{}

func (noopBroadcaster) BroadcastState(string, string, interface{}) {}

func NewNoopBroadcaster() StateBroadcaster {
	return noopBroadcaster{}
}
