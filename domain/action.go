package domain

// ActionKind identifies the two externally triggerable room operations.
type ActionKind int

const (
	DeliverAction ActionKind = iota
	RecordAction
)

func (k ActionKind) String() string {
	switch k {
	case DeliverAction:
		return "deliver"
	case RecordAction:
		return "record"
	}
	return "unknown"
}

// Action is a deferred deliver-or-record request against a room. Executing
// it is subject to the room's own preconditions: it either fully succeeds
// or is a silent no-op, there is no partial application.
type Action struct {
	Kind    ActionKind
	Room    *ChatRoom
	Message string
}

func (a Action) execute(sender *User) bool {
	if a.Room == nil {
		return false
	}
	switch a.Kind {
	case DeliverAction:
		return a.Room.Deliver(a.Message, sender)
	case RecordAction:
		return a.Room.Record(a.Message, sender)
	default:
		return false
	}
}

// SendActions builds the canonical deliver-then-record pair for one
// message. Callers that queue actions themselves must preserve this order.
func SendActions(room *ChatRoom, message string) []Action {
	return []Action{
		{Kind: DeliverAction, Room: room, Message: message},
		{Kind: RecordAction, Room: room, Message: message},
	}
}
