package core

import "testing"

// recorder collects controller callbacks.
type recorder struct {
	axes    []AxisState
	selects []Transition
}

func (r *recorder) bind(c *Controller) {
	c.Bind(
		func(a AxisState) { r.axes = append(r.axes, a) },
		func(t Transition) { r.selects = append(r.selects, t) },
	)
}

func TestControllerAxisPressRelease(t *testing.T) {
	c := NewController()
	var r recorder
	r.bind(c)

	c.Press(ButtonUp)
	if got := c.Axes(); got != (AxisState{Vertical: 1}) {
		t.Errorf("After Up press, Axes() = %+v, expected vertical 1", got)
	}

	c.Release(ButtonUp)
	if got := c.Axes(); got != (AxisState{}) {
		t.Errorf("After Up release, Axes() = %+v, expected neutral", got)
	}

	if len(r.axes) != 2 {
		t.Fatalf("Expected 2 direction events, got %d", len(r.axes))
	}
	if r.axes[0].Vertical != 1 || r.axes[1].Vertical != 0 {
		t.Errorf("Unexpected direction events: %+v", r.axes)
	}
}

func TestControllerIgnoresRepeat(t *testing.T) {
	c := NewController()
	var r recorder
	r.bind(c)

	c.Press(ButtonLeft)
	c.Handle(KeyEvent{Button: ButtonLeft, Transition: Pressed, Repeat: true})
	c.Handle(KeyEvent{Button: ButtonLeft, Transition: Pressed, Repeat: true})

	if len(r.axes) != 1 {
		t.Errorf("Repeat events should not fire, got %d events", len(r.axes))
	}
	if c.Axes().Horizontal != -1 {
		t.Errorf("Horizontal = %d, expected -1", c.Axes().Horizontal)
	}

	// A second non-repeat press of a held button is also a no-op.
	c.Press(ButtonLeft)
	if len(r.axes) != 1 {
		t.Errorf("Press of a held button should not fire, got %d events", len(r.axes))
	}
}

func TestControllerReleaseWithoutPress(t *testing.T) {
	c := NewController()
	var r recorder
	r.bind(c)

	c.Release(ButtonDown)
	c.Release(ButtonRight)

	if got := c.Axes(); got != (AxisState{}) {
		t.Errorf("Unmatched releases should leave axes neutral, got %+v", got)
	}
	if len(r.axes) != 0 {
		t.Errorf("Unmatched releases should not fire, got %d events", len(r.axes))
	}
}

func TestControllerAxesStayInRange(t *testing.T) {
	c := NewController()
	sequence := []KeyEvent{
		{Button: ButtonUp, Transition: Pressed},
		{Button: ButtonUp, Transition: Pressed},
		{Button: ButtonDown, Transition: Pressed},
		{Button: ButtonUp, Transition: Released},
		{Button: ButtonUp, Transition: Released},
		{Button: ButtonDown, Transition: Released},
		{Button: ButtonDown, Transition: Released},
		{Button: ButtonLeft, Transition: Released},
		{Button: ButtonRight, Transition: Pressed},
		{Button: ButtonRight, Transition: Pressed},
	}

	for i, ev := range sequence {
		c.Handle(ev)
		a := c.Axes()
		if a.Vertical < -1 || a.Vertical > 1 || a.Horizontal < -1 || a.Horizontal > 1 {
			t.Fatalf("Step %d: axes out of range: %+v", i, a)
		}
	}
	if got := c.Axes(); got != (AxisState{Horizontal: 1}) {
		t.Errorf("Final Axes() = %+v, expected horizontal 1", got)
	}
}

func TestControllerOpposingButtons(t *testing.T) {
	c := NewController()

	c.Press(ButtonUp)
	c.Press(ButtonDown)
	if c.Axes().Vertical != 0 {
		t.Errorf("Up+Down should cancel, got %d", c.Axes().Vertical)
	}

	c.Release(ButtonUp)
	if c.Axes().Vertical != -1 {
		t.Errorf("Releasing Up while Down is held should give -1, got %d", c.Axes().Vertical)
	}
}

func TestControllerSelectEdges(t *testing.T) {
	c := NewController()
	var r recorder
	r.bind(c)

	c.Press(ButtonSelect)
	c.Press(ButtonSelect) // no transition
	c.Handle(KeyEvent{Button: ButtonSelect, Transition: Pressed, Repeat: true})
	c.Release(ButtonSelect)
	c.Release(ButtonSelect) // no transition

	if len(r.selects) != 2 {
		t.Fatalf("Expected 2 select events, got %d", len(r.selects))
	}
	if r.selects[0] != Pressed || r.selects[1] != Released {
		t.Errorf("Select events = %v, expected [pressed released]", r.selects)
	}
}

func TestControllerUnknownButton(t *testing.T) {
	c := NewController()
	var r recorder
	r.bind(c)

	if c.Handle(KeyEvent{Button: Button(99), Transition: Pressed}) {
		t.Error("Handle should report unknown buttons")
	}
	if c.Press(ButtonNone) {
		t.Error("ButtonNone should not be handled")
	}
	if len(r.axes) != 0 || len(r.selects) != 0 {
		t.Error("Unknown buttons should not fire events")
	}
}

func TestControllerRebindDuringEvent(t *testing.T) {
	c := NewController()
	var first, second int

	c.Bind(nil, func(Transition) {
		first++
		// Hand the controller to another listener mid-event.
		c.Bind(nil, func(Transition) { second++ })
	})

	c.Press(ButtonSelect)
	if first != 1 || second != 0 {
		t.Fatalf("Event should be handled by the old binding only: first=%d second=%d", first, second)
	}

	c.Release(ButtonSelect)
	if first != 1 || second != 1 {
		t.Errorf("Next event should reach the new binding: first=%d second=%d", first, second)
	}
}

func TestControllerUnbind(t *testing.T) {
	c := NewController()
	var r recorder
	r.bind(c)
	c.Unbind()

	c.Press(ButtonUp)
	c.Press(ButtonSelect)

	if len(r.axes) != 0 || len(r.selects) != 0 {
		t.Error("Unbound controller should not fire callbacks")
	}
	// State still tracks so the next listener sees a consistent controller.
	if c.Axes().Vertical != 1 || c.SelectState() != Pressed {
		t.Error("Unbound controller should still track state")
	}
}

func TestAxisDirection(t *testing.T) {
	tests := []struct {
		axes     AxisState
		expected Vec
	}{
		{AxisState{Vertical: 1}, Up},
		{AxisState{Vertical: -1}, Down},
		{AxisState{Horizontal: 1}, Right},
		{AxisState{Horizontal: -1}, Left},
		{AxisState{}, Zero},
	}

	for _, tc := range tests {
		if got := tc.axes.Direction(); got != tc.expected {
			t.Errorf("Direction(%+v) = %v, expected %v", tc.axes, got, tc.expected)
		}
	}
}
