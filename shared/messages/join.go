package messages

// JoinRequest is sent by a viewer after connecting to request joining the rig.
type JoinRequest struct {
	Version    string
	ClientName string
}

// JoinAccepted is sent by the director when a viewer's join request is accepted.
type JoinAccepted struct {
	ServerName string
	TickRate   int
	Stage      string
}

// JoinRejected is sent by the director when a viewer's join request is rejected.
type JoinRejected struct {
	Reason string
}
