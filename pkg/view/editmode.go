package view

import (
	"fmt"

	"github.com/Muayad-Arafeh/Qscape/pkg/graph"
)

// Mode is the active edit mode. It decides what a node click means.
type Mode int

const (
	ModeStart Mode = iota
	ModeEnd
	ModeBlocked
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeEnd:
		return "end"
	case ModeBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name from the frontend into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "start":
		return ModeStart, nil
	case "end":
		return ModeEnd, nil
	case "blocked":
		return ModeBlocked, nil
	default:
		return ModeStart, fmt.Errorf("unknown edit mode %q", s)
	}
}

// Controller translates node-click events into view-state mutations based on
// the active mode. Transitions between modes happen only through SetMode;
// clicks never change the mode.
type Controller struct {
	state *State
}

// NewController creates a controller bound to the given state.
func NewController(s *State) *Controller {
	return &Controller{state: s}
}

// Mode returns the active edit mode.
func (c *Controller) Mode() Mode {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	return c.state.mode
}

// SetMode switches the active edit mode.
func (c *Controller) SetMode(m Mode) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.mode = m
}

// Click dispatches a node click on the current mode:
//
//   - start mode sets the start selection
//   - end mode sets the end selection
//   - blocked mode toggles blocked membership
//
// The controller performs no validation against the blocked set when
// selecting; the UI prevents clicks on blocked nodes through their style,
// and the solve precondition check rejects blocked endpoints regardless.
func (c *Controller) Click(id graph.NodeID) {
	switch c.Mode() {
	case ModeStart:
		c.state.SetStart(id)
	case ModeEnd:
		c.state.SetEnd(id)
	case ModeBlocked:
		c.state.ToggleBlocked(id)
	}
}
