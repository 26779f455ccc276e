package messages

// ActivateCamera asks the director to cut to the camera in the given slot.
// A viewer that takes control this way also pauses the director's auto-cycle.
type ActivateCamera struct {
	Slot int
}

// SetZoom asks the director to glide the given camera's zoom toward Target.
// Target 1 restores the camera's base projection.
type SetZoom struct {
	Slot   int
	Target float64
}
