package models

// MessagePayload is the wire shape relayed to every member of a room,
// the sender included. Clients compare User against their own id to
// style sent vs received messages.
type MessagePayload struct {
	Room string `json:"room"`
	User string `json:"user"`
	Msg  string `json:"msg"`
}
