package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/log"
	"github.com/cbodonnell/krismas/pkg/queue"
)

// Controller owns the game state around the simulation context: the score,
// the tracked gift box and snowball collections and the viewport. Every
// mutation happens inside a method called from the single game loop goroutine.
type Controller struct {
	world    World
	events   queue.Queue
	random   RandomSource
	logger   *log.Logger
	viewport types.Viewport

	// entities maps every body the controller created to its tagged identity.
	entities  map[types.EntityID]types.Entity
	giftBoxes []types.EntityID
	snowballs []types.EntityID
	score     int
	nextID    types.EntityID

	ground     types.EntityID
	hoopOuter  types.EntityID
	hoopSensor types.EntityID

	bootstrapped  bool
	onScoreChange func(change types.ScoreChange)
}

// NewControllerOptions contains options for creating a new Controller.
type NewControllerOptions struct {
	// World is the simulation context. Required.
	World World
	// EventQueue buffers input events until the next tick.
	// Defaults to an in-memory queue.
	EventQueue queue.Queue
	// Random drives spawn positions and kinds. Defaults to a time seeded source.
	Random RandomSource
	// Width and Height are the initial display size. Both must be positive.
	Width  int
	Height int
	// OnScoreChange is called after every scoring event.
	OnScoreChange func(change types.ScoreChange)
}

var ErrNotBootstrapped = errors.New("controller is not bootstrapped")

func NewController(opts NewControllerOptions) (*Controller, error) {
	if opts.World == nil {
		return nil, fmt.Errorf("world is required")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid display size %dx%d", opts.Width, opts.Height)
	}

	events := opts.EventQueue
	if events == nil {
		events = queue.NewInMemoryQueue(constants.EventQueueSize)
	}

	random := opts.Random
	if random == nil {
		random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Controller{
		world:         opts.World,
		events:        events,
		random:        random,
		logger:        log.Component("game"),
		viewport:      types.NewViewport(opts.Width, opts.Height),
		entities:      make(map[types.EntityID]types.Entity),
		onScoreChange: opts.OnScoreChange,
	}, nil
}

// Bootstrap inserts the static boundary geometry: the ground and the hoop
// with its inner scoring sensor. It may only run once.
func (c *Controller) Bootstrap() error {
	if c.bootstrapped {
		return fmt.Errorf("controller already bootstrapped")
	}

	for _, def := range c.boundaryDefs() {
		if err := c.world.AddBody(def); err != nil {
			return fmt.Errorf("failed to add %s body: %v", def.Entity.Kind, err)
		}
		c.entities[def.Entity.ID] = def.Entity
	}

	c.bootstrapped = true
	c.logger.Info("World bootstrapped for a %dx%d display", c.viewport.Width, c.viewport.Height)
	return nil
}

// Enqueue schedules an event for the next tick.
func (c *Controller) Enqueue(event interface{}) error {
	if err := c.events.Enqueue(event); err != nil {
		return fmt.Errorf("failed to enqueue %T: %w", event, err)
	}
	return nil
}

// Dispatch applies a single event to the game state.
func (c *Controller) Dispatch(event interface{}) error {
	if !c.bootstrapped {
		return ErrNotBootstrapped
	}

	switch e := event.(type) {
	case types.SpawnRequestedEvent:
		if _, err := c.Spawn(); err != nil {
			return fmt.Errorf("failed to spawn: %v", err)
		}
	case types.DragReleasedEvent:
		return c.handleDragReleased(e)
	case types.CollisionDetectedEvent:
		c.handleCollisions(e)
	case types.StepCompletedEvent:
		c.sweep()
	case types.ViewportResizedEvent:
		return c.resize(e)
	default:
		return fmt.Errorf("unknown event type %T", event)
	}
	return nil
}

// Tick drains pending input events, steps the world by dt seconds and then
// resolves the collisions and the sweep for that step, in that order.
func (c *Controller) Tick(dt float64) error {
	if !c.bootstrapped {
		return ErrNotBootstrapped
	}

	pending, err := c.events.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read pending events: %v", err)
	}
	for _, event := range pending {
		if err := c.Dispatch(event); err != nil {
			c.logger.Error("Failed to handle %T: %v", event, err)
		}
	}

	pairs := c.world.Step(dt)
	if len(pairs) > 0 {
		if err := c.Dispatch(types.CollisionDetectedEvent{Pairs: pairs}); err != nil {
			return fmt.Errorf("failed to resolve collisions: %v", err)
		}
	}
	if err := c.Dispatch(types.StepCompletedEvent{}); err != nil {
		return fmt.Errorf("failed to complete step: %v", err)
	}

	return nil
}

func (c *Controller) Score() int {
	return c.score
}

// GiftBoxes returns the live gift boxes in spawn order.
func (c *Controller) GiftBoxes() []types.EntityID {
	return append([]types.EntityID(nil), c.giftBoxes...)
}

// Snowballs returns the live snowballs in spawn order.
func (c *Controller) Snowballs() []types.EntityID {
	return append([]types.EntityID(nil), c.snowballs...)
}

func (c *Controller) Entity(id types.EntityID) (types.Entity, bool) {
	entity, ok := c.entities[id]
	return entity, ok
}

func (c *Controller) Ground() types.EntityID {
	return c.ground
}

func (c *Controller) HoopOuter() types.EntityID {
	return c.hoopOuter
}

func (c *Controller) HoopSensor() types.EntityID {
	return c.hoopSensor
}

func (c *Controller) allocateID() types.EntityID {
	c.nextID++
	return c.nextID
}

func (c *Controller) track(entity types.Entity) {
	c.entities[entity.ID] = entity
	switch entity.Kind {
	case types.EntityKindGiftBox:
		c.giftBoxes = append(c.giftBoxes, entity.ID)
	case types.EntityKindSnowball:
		c.snowballs = append(c.snowballs, entity.ID)
	}
}

// untrack drops an entity from whichever collection holds it.
func (c *Controller) untrack(id types.EntityID) {
	delete(c.entities, id)
	if i := indexOf(c.giftBoxes, id); i != -1 {
		c.giftBoxes = append(c.giftBoxes[:i], c.giftBoxes[i+1:]...)
	}
	if i := indexOf(c.snowballs, id); i != -1 {
		c.snowballs = append(c.snowballs[:i], c.snowballs[i+1:]...)
	}
}

// removeEntity takes an entity out of the world and out of its collection
// within the same call.
func (c *Controller) removeEntity(id types.EntityID) error {
	err := c.world.RemoveBody(id)
	c.untrack(id)
	if err != nil {
		return fmt.Errorf("failed to remove body %d: %v", id, err)
	}
	return nil
}

func indexOf(ids []types.EntityID, id types.EntityID) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}
