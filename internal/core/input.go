package core

// Button is a logical input button, abstracted from physical keys.
// The platform maps its own key codes onto these.
type Button int

const (
	ButtonNone Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonSelect
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// Transition is the edge of a button state change.
type Transition int

const (
	Released Transition = iota
	Pressed
)

// String returns "pressed" or "released".
func (t Transition) String() string {
	if t == Pressed {
		return "pressed"
	}
	return "released"
}

// KeyEvent is a raw press or release delivered by the platform.
type KeyEvent struct {
	Button     Button
	Transition Transition
	Repeat     bool // Auto-repeat while held
}

// AxisState is the D-pad state: each axis is -1, 0 or +1.
// Vertical is +1 for up; Horizontal is +1 for right.
type AxisState struct {
	Vertical   int
	Horizontal int
}

// Direction converts the axes to a board displacement (horizontal, -vertical).
// The result is not necessarily cardinal: both axes may be held.
func (a AxisState) Direction() Vec {
	return Vec{X: a.Horizontal, Y: -a.Vertical}
}

// DirectionHandler receives the D-pad state after every axis change.
type DirectionHandler func(AxisState)

// SelectHandler receives select button transitions.
type SelectHandler func(Transition)

// Controller turns raw key events into two clamped axes and a debounced
// select button, and forwards changes to exactly one bound listener.
//
// Each directional button contributes to its axis only while it is held, so a
// release for a button that was never pressed is a no-op and the axes cannot
// leave {-1, 0, +1}. Repeat events never change state.
type Controller struct {
	held      map[Button]bool
	selectBtn Transition

	onDirection DirectionHandler
	onSelect    SelectHandler
}

// NewController creates a controller with no listener bound.
func NewController() *Controller {
	return &Controller{
		held:      make(map[Button]bool),
		selectBtn: Released,
	}
}

// Bind replaces both callback slots in one step. Nil handlers detach input.
// Only the most recent binding receives events.
func (c *Controller) Bind(onDirection DirectionHandler, onSelect SelectHandler) {
	c.onDirection = onDirection
	c.onSelect = onSelect
}

// Unbind detaches the current listener.
func (c *Controller) Unbind() {
	c.Bind(nil, nil)
}

// Axes returns the current D-pad state.
func (c *Controller) Axes() AxisState {
	var a AxisState
	if c.held[ButtonUp] {
		a.Vertical++
	}
	if c.held[ButtonDown] {
		a.Vertical--
	}
	if c.held[ButtonRight] {
		a.Horizontal++
	}
	if c.held[ButtonLeft] {
		a.Horizontal--
	}
	return a
}

// SelectState returns the current select button state.
func (c *Controller) SelectState() Transition {
	return c.selectBtn
}

// Handle applies one raw event. It returns false if the event names an
// unknown button; such events leave all state untouched.
func (c *Controller) Handle(ev KeyEvent) bool {
	switch ev.Button {
	case ButtonUp, ButtonDown, ButtonLeft, ButtonRight:
		if ev.Repeat {
			return true
		}
		c.setHeld(ev.Button, ev.Transition == Pressed)
		return true
	case ButtonSelect:
		if ev.Repeat || ev.Transition == c.selectBtn {
			return true
		}
		c.selectBtn = ev.Transition
		// Capture before calling: the handler may rebind.
		if h := c.onSelect; h != nil {
			h(ev.Transition)
		}
		return true
	default:
		return false
	}
}

// Press is shorthand for a non-repeat press event.
func (c *Controller) Press(b Button) bool {
	return c.Handle(KeyEvent{Button: b, Transition: Pressed})
}

// Release is shorthand for a release event.
func (c *Controller) Release(b Button) bool {
	return c.Handle(KeyEvent{Button: b, Transition: Released})
}

// Tap presses and immediately releases a button.
func (c *Controller) Tap(b Button) bool {
	if !c.Press(b) {
		return false
	}
	return c.Release(b)
}

// Reset clears all held state without firing events.
func (c *Controller) Reset() {
	for b := range c.held {
		delete(c.held, b)
	}
	c.selectBtn = Released
}

// setHeld updates one directional button and notifies on actual change.
func (c *Controller) setHeld(b Button, down bool) {
	if c.held[b] == down {
		return
	}
	if down {
		c.held[b] = true
	} else {
		delete(c.held, b)
	}
	if h := c.onDirection; h != nil {
		h(c.Axes())
	}
}
