package types

import (
	"image/color"

	"github.com/cbodonnell/krismas/pkg/kinematic"
)

// EntityID identifies a body in the simulation context.
type EntityID uint32

// EntityKind is the tagged identity carried alongside every physics handle.
type EntityKind int

const (
	EntityKindStatic EntityKind = iota
	EntityKindSensor
	EntityKindGiftBox
	EntityKindSnowball
)

func (k EntityKind) String() string {
	switch k {
	case EntityKindStatic:
		return "Static"
	case EntityKindSensor:
		return "Sensor"
	case EntityKindGiftBox:
		return "GiftBox"
	case EntityKindSnowball:
		return "Snowball"
	}
	return "Unknown"
}

// IsTracked reports whether entities of this kind are scoreable.
func (k EntityKind) IsTracked() bool {
	return k == EntityKindGiftBox || k == EntityKindSnowball
}

type Entity struct {
	ID   EntityID
	Kind EntityKind
}

type ShapeType int

const (
	ShapeCircle ShapeType = iota
	ShapeRectangle
	// ShapeRing is a circular rim open at the top.
	ShapeRing
)

// BodyDef describes a body to be inserted into the simulation context.
type BodyDef struct {
	Entity      Entity
	Shape       ShapeType
	Position    kinematic.Vector
	Width       float64
	Height      float64
	Radius      float64
	Restitution float64
	Render      RenderDef
}

// RenderDef is the render metadata of a body.
// Texture takes precedence over Fill; a body with neither is invisible.
type RenderDef struct {
	Texture string
	Scale   float64
	Fill    color.Color
}

// Viewport is the visible display area and the camera bounds fitted to it.
type Viewport struct {
	Width     int
	Height    int
	CameraMin kinematic.Vector
	CameraMax kinematic.Vector
}

// NewViewport returns a viewport whose camera bounds cover (0,0)-(width,height).
func NewViewport(width, height int) Viewport {
	return Viewport{
		Width:     width,
		Height:    height,
		CameraMin: kinematic.Vector{},
		CameraMax: kinematic.Vector{X: float64(width), Y: float64(height)},
	}
}

// ScoreChange is reported every time an entity lands in the hoop.
type ScoreChange struct {
	Entity   Entity
	Delta    int
	Score    int
	Position kinematic.Vector
}
