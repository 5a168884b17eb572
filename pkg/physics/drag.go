package physics

import (
	"math"

	"github.com/cbodonnell/krismas/pkg/game/constants"
	"github.com/cbodonnell/krismas/pkg/game/types"
	"github.com/cbodonnell/krismas/pkg/kinematic"
	"github.com/jakecoffman/cp"
)

// dragState is the elastic link between the pointer body and a grabbed body.
type dragState struct {
	id     types.EntityID
	joint  *cp.Constraint
	target cp.Vector
}

// Grab attaches the pointer to the dynamic body under point.
// Static and sensor bodies are never grabbed.
func (w *World) Grab(point kinematic.Vector) (types.EntityID, bool) {
	if w.drag != nil {
		w.releaseDrag()
	}

	p := cp.Vector{X: point.X, Y: point.Y}
	info := w.space.PointQueryNearest(p, constants.DragGrabRadius, grabFilter)
	if info == nil || info.Shape == nil {
		return 0, false
	}
	body := info.Shape.Body()
	if body.GetType() != cp.BODY_DYNAMIC {
		return 0, false
	}
	id, ok := body.UserData.(types.EntityID)
	if !ok {
		return 0, false
	}

	// grab the closest point on the surface when the press is just outside it
	nearest := p
	if info.Distance > 0 {
		nearest = info.Point
	}

	w.pointer.SetPosition(p)
	w.pointer.SetVelocityVector(cp.Vector{})

	joint := cp.NewPivotJoint2(w.pointer, body, cp.Vector{}, body.WorldToLocal(nearest))
	joint.SetMaxForce(constants.DragMaxForce)
	joint.SetErrorBias(math.Pow(1-constants.DragStiffness, 60))
	w.space.AddConstraint(joint)

	w.drag = &dragState{id: id, joint: joint, target: p}
	w.logger.Trace("Grabbed body %d", id)
	return id, true
}

// Drag moves the pointer end of the constraint.
func (w *World) Drag(point kinematic.Vector) {
	if w.drag == nil {
		return
	}
	w.drag.target = cp.Vector{X: point.X, Y: point.Y}
}

// Release drops the grabbed body, if any, and reports which one it was.
func (w *World) Release() (types.EntityID, bool) {
	if w.drag == nil {
		return 0, false
	}
	id := w.drag.id
	w.releaseDrag()
	return id, true
}

// Grabbed reports the body currently held by the pointer.
func (w *World) Grabbed() (types.EntityID, bool) {
	if w.drag == nil {
		return 0, false
	}
	return w.drag.id, true
}

func (w *World) releaseDrag() {
	w.space.RemoveConstraint(w.drag.joint)
	w.logger.Trace("Released body %d", w.drag.id)
	w.drag = nil
}

// updatePointer moves the kinematic pointer body to the drag target, giving it
// the velocity needed to get there within dt.
func (w *World) updatePointer(dt float64) {
	if w.drag == nil || dt <= 0 {
		return
	}
	current := w.pointer.Position()
	w.pointer.SetVelocityVector(w.drag.target.Sub(current).Mult(1 / dt))
	w.pointer.SetPosition(w.drag.target)
}
