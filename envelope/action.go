package envelope

// Action identifies the collection mutation carried by a binding envelope.
type Action string

// Canonical binding actions.
const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Known reports whether the action is one of the canonical binding actions.
// Unknown actions are not an error on the decode path, since a server may
// start sending actions this client does not handle yet, but they are
// rejected on the encode path.
func (a Action) Known() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	default:
		return false
	}
}

// String returns the wire representation of the action.
func (a Action) String() string {
	return string(a)
}
