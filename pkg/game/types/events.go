package types

import "github.com/cbodonnell/krismas/pkg/kinematic"

// SpawnRequestedEvent asks for a new falling entity.
type SpawnRequestedEvent struct{}

// DragReleasedEvent is emitted when the pointer lets go of a grabbed body.
type DragReleasedEvent struct {
	EntityID EntityID
	// Pointer is the absolute pointer position at the moment of release.
	Pointer kinematic.Vector
}

// ContactPair is two bodies whose contact began during a step.
type ContactPair struct {
	A EntityID
	B EntityID
}

// CollisionDetectedEvent carries the contacts that started in the last step.
type CollisionDetectedEvent struct {
	Pairs []ContactPair
}

// StepCompletedEvent follows every simulation step.
type StepCompletedEvent struct{}

// ViewportResizedEvent is emitted when the window size changes.
type ViewportResizedEvent struct {
	Width  int
	Height int
}
