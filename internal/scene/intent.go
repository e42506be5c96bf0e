package scene

import "solar-renderer/internal/mathutil"

// Intent is one of the enumerated control inputs the core accepts; the
// windowing layer translates raw key events into these, so the scene never
// sees window events.
type Intent int

const (
	PanForward Intent = iota
	PanBack
	PanLeft
	PanRight
	OrbitLeft
	OrbitRight
	OrbitUp
	OrbitDown
	ZoomIn
	ZoomOut
	MoveUp
	MoveDown
)

const (
	panSpeed      = 1.0
	rotationSpeed = 0.05
	zoomSpeed     = 2.0
	verticalSpeed = 1.0
)

// Apply feeds one frame's intents to the camera. Pan intents accumulate
// into a single horizontal-plane move so diagonal panning is one call.
func (s *Scene) Apply(intents []Intent) {
	var movement mathutil.Vec3

	for _, in := range intents {
		switch in {
		case PanForward:
			movement[2] -= panSpeed
		case PanBack:
			movement[2] += panSpeed
		case PanLeft:
			movement[0] -= panSpeed
		case PanRight:
			movement[0] += panSpeed
		case OrbitLeft:
			s.Camera.Orbit(-rotationSpeed, 0)
		case OrbitRight:
			s.Camera.Orbit(rotationSpeed, 0)
		case OrbitUp:
			s.Camera.Orbit(0, -rotationSpeed)
		case OrbitDown:
			s.Camera.Orbit(0, rotationSpeed)
		case ZoomIn:
			s.Camera.Zoom(zoomSpeed)
		case ZoomOut:
			s.Camera.Zoom(-zoomSpeed)
		case MoveUp:
			s.Camera.MoveVertical(verticalSpeed)
		case MoveDown:
			s.Camera.MoveVertical(-verticalSpeed)
		}
	}

	if movement.Len() > 0 {
		s.Camera.MoveCenter(movement)
	}
}
