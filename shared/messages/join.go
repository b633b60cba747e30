package messages

// Hello is sent by a client after connecting to introduce itself.
type Hello struct {
	Version    string
	PlayerName string
}

// Welcome is sent by the server when a client's hello is accepted.
type Welcome struct {
	PlayerID   string
	ServerName string
	TickRate   int
}

// Rejected is sent by the server when a client's hello is refused.
type Rejected struct {
	Reason string
}
