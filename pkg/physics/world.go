package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/kinematic"
	"github.com/cbodonnell/krismas/pkg/log"
	"github.com/jakecoffman/cp"
)

var (
	ErrBodyNotFound  = errors.New("body not found")
	ErrDuplicateBody = errors.New("body already exists")
)

const (
	collisionTypeStatic cp.CollisionType = iota + 1
	collisionTypeSensor
	collisionTypeEntity
)

const (
	grabbableMaskBit uint = 1 << 31
	defaultFriction       = 0.3
	solverIterations      = 20
)

var (
	grabFilter = cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: grabbableMaskBit,
		Mask:       grabbableMaskBit,
	}
	notGrabbableFilter = cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: ^grabbableMaskBit,
		Mask:       cp.ALL_CATEGORIES,
	}
)

// World is a Chipmunk2D space holding the ground, the hoop and the falling
// entities. It is not safe for concurrent use.
type World struct {
	space          *cp.Space
	bodies         map[types.EntityID]*worldBody
	contacts       []types.ContactPair
	ticksPerSecond float64
	logger         *log.Logger

	pointer *cp.Body
	drag    *dragState
}

type worldBody struct {
	def    types.BodyDef
	body   *cp.Body
	shapes []*cp.Shape
}

// BodyState is a render snapshot of a body.
type BodyState struct {
	Def      types.BodyDef
	Position kinematic.Vector
	Angle    float64
}

type NewWorldOptions struct {
	// Gravity is the downward acceleration in pixels per second squared.
	Gravity float64
	// TicksPerSecond converts velocities given in pixels per tick.
	TicksPerSecond int
}

func NewWorld(opts NewWorldOptions) (*World, error) {
	if opts.TicksPerSecond <= 0 {
		return nil, fmt.Errorf("invalid tick rate %d", opts.TicksPerSecond)
	}

	space := cp.NewSpace()
	space.Iterations = solverIterations
	space.SetGravity(cp.Vector{X: 0, Y: opts.Gravity})

	w := &World{
		space:          space,
		bodies:         make(map[types.EntityID]*worldBody),
		ticksPerSecond: float64(opts.TicksPerSecond),
		logger:         log.Component("physics"),
		pointer:        cp.NewKinematicBody(),
	}

	handler := space.NewCollisionHandler(collisionTypeSensor, collisionTypeEntity)
	handler.BeginFunc = w.beginSensorContact

	return w, nil
}

// beginSensorContact records a sensor contact. Bodies are never removed here
// since the space is locked for the duration of the step.
func (w *World) beginSensorContact(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	idA, okA := a.UserData.(types.EntityID)
	idB, okB := b.UserData.(types.EntityID)
	if !okA || !okB {
		w.logger.Warn("Contact between untagged bodies ignored")
		return true
	}
	w.contacts = append(w.contacts, types.ContactPair{A: idA, B: idB})
	return true
}

func (w *World) AddBody(def types.BodyDef) error {
	id := def.Entity.ID
	if _, ok := w.bodies[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateBody, id)
	}

	body, err := newBody(def)
	if err != nil {
		return fmt.Errorf("failed to create body %d: %v", id, err)
	}
	body.SetPosition(cp.Vector{X: def.Position.X, Y: def.Position.Y})
	body.UserData = id
	w.space.AddBody(body)

	shapes, err := newShapes(body, def)
	if err != nil {
		w.space.RemoveBody(body)
		return fmt.Errorf("failed to create shapes for body %d: %v", id, err)
	}
	for _, shape := range shapes {
		configureShape(shape, def)
		w.space.AddShape(shape)
	}

	w.bodies[id] = &worldBody{def: def, body: body, shapes: shapes}
	w.logger.Trace("Added %s body %d at (%0.1f, %0.1f)", def.Entity.Kind, id, def.Position.X, def.Position.Y)
	return nil
}

func newBody(def types.BodyDef) (*cp.Body, error) {
	switch def.Entity.Kind {
	case types.EntityKindStatic, types.EntityKindSensor:
		return cp.NewStaticBody(), nil
	}

	mass := constants.EntityMass
	switch def.Shape {
	case types.ShapeCircle:
		return cp.NewBody(mass, cp.MomentForCircle(mass, 0, def.Radius, cp.Vector{})), nil
	case types.ShapeRectangle:
		return cp.NewBody(mass, cp.MomentForBox(mass, def.Width, def.Height)), nil
	}
	return nil, fmt.Errorf("shape %d cannot be dynamic", def.Shape)
}

func newShapes(body *cp.Body, def types.BodyDef) ([]*cp.Shape, error) {
	switch def.Shape {
	case types.ShapeCircle:
		return []*cp.Shape{cp.NewCircle(body, def.Radius, cp.Vector{})}, nil
	case types.ShapeRectangle:
		return []*cp.Shape{cp.NewBox(body, def.Width, def.Height, 0)}, nil
	case types.ShapeRing:
		return newRim(body, def.Radius), nil
	}
	return nil, fmt.Errorf("unknown shape %d", def.Shape)
}

// newRim approximates a circle of segments around the body origin, leaving
// out the segments that face up so falling bodies can enter the ring.
func newRim(body *cp.Body, radius float64) []*cp.Shape {
	n := constants.HoopRimSegments
	step := 2 * math.Pi / float64(n)
	up := -math.Pi / 2

	var shapes []*cp.Shape
	for i := 0; i < n; i++ {
		a0, a1 := float64(i)*step, float64(i+1)*step
		mid := (a0 + a1) / 2
		if angularDistance(mid, up) < constants.HoopOpeningAngle/2 {
			continue
		}
		from := cp.Vector{X: radius * math.Cos(a0), Y: radius * math.Sin(a0)}
		to := cp.Vector{X: radius * math.Cos(a1), Y: radius * math.Sin(a1)}
		shapes = append(shapes, cp.NewSegment(body, from, to, constants.HoopRimThickness))
	}
	return shapes
}

func angularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

func configureShape(shape *cp.Shape, def types.BodyDef) {
	shape.SetElasticity(def.Restitution)
	shape.SetFriction(defaultFriction)
	shape.UserData = def.Entity.ID

	switch def.Entity.Kind {
	case types.EntityKindSensor:
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeSensor)
		shape.SetFilter(notGrabbableFilter)
	case types.EntityKindStatic:
		shape.SetCollisionType(collisionTypeStatic)
		shape.SetFilter(notGrabbableFilter)
	default:
		shape.SetCollisionType(collisionTypeEntity)
	}
}

func (w *World) RemoveBody(id types.EntityID) error {
	wb, ok := w.bodies[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrBodyNotFound, id)
	}

	if w.drag != nil && w.drag.id == id {
		w.releaseDrag()
	}
	for _, shape := range wb.shapes {
		w.space.RemoveShape(shape)
	}
	w.space.RemoveBody(wb.body)
	delete(w.bodies, id)

	w.logger.Trace("Removed %s body %d", wb.def.Entity.Kind, id)
	return nil
}

func (w *World) Contains(id types.EntityID) bool {
	_, ok := w.bodies[id]
	return ok
}

func (w *World) Position(id types.EntityID) (kinematic.Vector, bool) {
	wb, ok := w.bodies[id]
	if !ok {
		return kinematic.Vector{}, false
	}
	p := wb.body.Position()
	return kinematic.Vector{X: p.X, Y: p.Y}, true
}

// Velocity returns the linear velocity of a body in pixels per tick.
func (w *World) Velocity(id types.EntityID) (kinematic.Vector, bool) {
	wb, ok := w.bodies[id]
	if !ok {
		return kinematic.Vector{}, false
	}
	v := wb.body.Velocity()
	return kinematic.Vector{X: v.X / w.ticksPerSecond, Y: v.Y / w.ticksPerSecond}, true
}

func (w *World) SetVelocity(id types.EntityID, velocity kinematic.Vector) error {
	wb, ok := w.bodies[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrBodyNotFound, id)
	}
	if wb.body.GetType() != cp.BODY_DYNAMIC {
		return fmt.Errorf("body %d is not dynamic", id)
	}
	wb.body.SetVelocityVector(cp.Vector{X: velocity.X * w.ticksPerSecond, Y: velocity.Y * w.ticksPerSecond})
	return nil
}

func (w *World) Step(dt float64) []types.ContactPair {
	w.contacts = w.contacts[:0]
	w.updatePointer(dt)
	w.space.Step(dt)

	if len(w.contacts) == 0 {
		return nil
	}
	return append([]types.ContactPair(nil), w.contacts...)
}

func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Bodies returns a snapshot of every body ordered by ID.
func (w *World) Bodies() []BodyState {
	states := make([]BodyState, 0, len(w.bodies))
	for _, wb := range w.bodies {
		p := wb.body.Position()
		states = append(states, BodyState{
			Def:      wb.def,
			Position: kinematic.Vector{X: p.X, Y: p.Y},
			Angle:    wb.body.Angle(),
		})
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].Def.Entity.ID < states[j].Def.Entity.ID
	})
	return states
}
