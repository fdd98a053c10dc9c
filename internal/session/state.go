package session

// State is the lifecycle position of a Session.
type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
	StateConfiguring
	StateActive
	StateDisconnecting
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateConfiguring:
		return "configuring"
	case StateActive:
		return "active"
	case StateDisconnecting:
		return "disconnecting"
	case StateClosed:
		return "closed"
	default:
		return "idle"
	}
}

// Live reports whether the session owns running tasks.
func (s State) Live() bool {
	return s >= StateConnecting && s <= StateActive
}
