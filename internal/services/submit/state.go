package submit

// State is the position of a flow in the signing protocol.
type State int

const (
	// StateIdle: nothing sent yet.
	StateIdle State = iota
	// StateAwaitingUnsignedTx: build request sent, waiting on the blob and
	// signing payload.
	StateAwaitingUnsignedTx
	// StateAwaitingBroadcast: payload signed locally, submit request sent.
	StateAwaitingBroadcast
	// StateDone: broadcast result received.
	StateDone
	// StateFailed: terminal failure in any earlier state.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingUnsignedTx:
		return "awaiting-unsigned-tx"
	case StateAwaitingBroadcast:
		return "awaiting-broadcast"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
