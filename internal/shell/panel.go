// Package shell holds the admin panel chrome: which routes get the
// navigation bar and side panel, and the open/closed state of the panel.
package shell

import (
	"errors"
	"fmt"
)

// ErrUnknownIntent is returned when an intent name is not recognised.
var ErrUnknownIntent = errors.New("shell: unknown intent")

// ErrUnknownPanel is returned when a panel state name is not recognised.
var ErrUnknownPanel = errors.New("shell: unknown panel state")

// Panel is the visibility of the side panel.
type Panel int

const (
	PanelClosed Panel = iota
	PanelOpen
)

func (p Panel) String() string {
	if p == PanelOpen {
		return "open"
	}
	return "closed"
}

// IsOpen reports whether the side panel is shown.
func (p Panel) IsOpen() bool { return p == PanelOpen }

// MarshalText encodes the panel as "open" or "closed".
func (p Panel) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts "open" or "closed".
func (p *Panel) UnmarshalText(text []byte) error {
	parsed, err := ParsePanel(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePanel converts "open" or "closed" to a Panel.
func ParsePanel(s string) (Panel, error) {
	switch s {
	case "open":
		return PanelOpen, nil
	case "closed":
		return PanelClosed, nil
	}
	return PanelClosed, fmt.Errorf("%w: %q", ErrUnknownPanel, s)
}

// Intent is a state change requested by the navigation bar or side panel.
// The layout that owns the Panel decides how to apply it.
type Intent int

const (
	// RequestOpen is emitted by the navigation bar toggle.
	RequestOpen Intent = iota + 1
	// RequestClose is emitted by the side panel close button and by every
	// destination link inside the panel.
	RequestClose
)

func (i Intent) String() string {
	switch i {
	case RequestOpen:
		return "open"
	case RequestClose:
		return "close"
	}
	return fmt.Sprintf("Intent(%d)", int(i))
}

// ParseIntent converts "open" or "close" to an Intent.
func ParseIntent(s string) (Intent, error) {
	switch s {
	case "open":
		return RequestOpen, nil
	case "close":
		return RequestClose, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIntent, s)
}

// Apply returns the state after handling intent. Intents that target the
// current state, and unknown intents, leave the panel unchanged.
func (p Panel) Apply(intent Intent) Panel {
	switch {
	case p == PanelClosed && intent == RequestOpen:
		return PanelOpen
	case p == PanelOpen && intent == RequestClose:
		return PanelClosed
	}
	return p
}

// Replay applies intents in order starting from a closed panel.
func Replay(intents ...Intent) Panel {
	p := PanelClosed
	for _, intent := range intents {
		p = p.Apply(intent)
	}
	return p
}
