// Package netconfig defines constants shared between the viewer client and
// the director server. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

const (
	// DefaultPort is the director's websocket port.
	DefaultPort uint = 7473
	// DefaultAPIPort is the director's HTTP control port.
	DefaultAPIPort = 7474

	// DefaultTickRate is how many times per second the director broadcasts
	// the rig state.
	DefaultTickRate = 20

	// ProtocolVersion gates joins: clients with a mismatched version are
	// rejected when the server was started with a version requirement.
	ProtocolVersion = "0.3.0"

	// AppName keys persistent viewer data (saved rigs).
	AppName = "viewfinder"
)
