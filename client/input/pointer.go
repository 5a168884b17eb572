package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type PointerPhase int

const (
	PointerIdle PointerPhase = iota
	PointerPressed
	PointerMoved
	PointerReleased
)

// PointerState is what the pointer did during the current tick.
type PointerState struct {
	Phase PointerPhase
	X     int
	Y     int
}

// Pointer merges the left mouse button and the first active touch into a
// single press/drag/release stream.
type Pointer struct {
	touchID  ebiten.TouchID
	touching bool
	mouse    bool
	x, y     int
	touchIDs []ebiten.TouchID
}

func NewPointer() *Pointer {
	return &Pointer{}
}

// Update must be called once per tick.
func (p *Pointer) Update() PointerState {
	switch {
	case p.touching:
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			return PointerState{Phase: PointerReleased, X: p.x, Y: p.y}
		}
		p.x, p.y = ebiten.TouchPosition(p.touchID)
		return PointerState{Phase: PointerMoved, X: p.x, Y: p.y}
	case p.mouse:
		p.x, p.y = ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			p.mouse = false
			return PointerState{Phase: PointerReleased, X: p.x, Y: p.y}
		}
		return PointerState{Phase: PointerMoved, X: p.x, Y: p.y}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.mouse = true
		p.x, p.y = ebiten.CursorPosition()
		return PointerState{Phase: PointerPressed, X: p.x, Y: p.y}
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		p.touching = true
		p.touchID = p.touchIDs[0]
		p.x, p.y = ebiten.TouchPosition(p.touchID)
		return PointerState{Phase: PointerPressed, X: p.x, Y: p.y}
	}

	return PointerState{Phase: PointerIdle}
}
