package game

import (
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/kinematic"
)

// World is the simulation context the controller drives.
// It owns every body; the controller only keeps references by ID.
type World interface {
	// AddBody inserts a body built from def.
	AddBody(def types.BodyDef) error
	// RemoveBody removes a body and everything attached to it.
	RemoveBody(id types.EntityID) error
	// Contains reports whether the body is in the active set.
	Contains(id types.EntityID) bool
	// Position returns the current centre of a body.
	Position(id types.EntityID) (kinematic.Vector, bool)
	// SetVelocity sets the linear velocity of a body in pixels per tick.
	SetVelocity(id types.EntityID, velocity kinematic.Vector) error
	// Step advances the simulation by dt seconds and returns the contacts
	// that began during the step.
	Step(dt float64) []types.ContactPair
}

// RandomSource yields uniformly distributed values in [0, 1).
type RandomSource interface {
	Float64() float64
}
