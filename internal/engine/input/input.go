// Package input turns SDL2 events into viewer events and tracks held keys.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events. Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}
			if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
				// Key up events are lost with focus.
				clear(i.held)
			}

		case *sdl.KeyboardEvent:
			i.handleKey(e.Type == sdl.KEYDOWN, e.Repeat != 0, e.Keysym.Scancode)
		}
	}

	return false
}

func (i *Input) handleKey(down, repeat bool, code sdl.Scancode) {
	if down {
		i.held[code] = true
		if !repeat {
			i.events = append(i.events, Event{Type: EventKeyDown, Key: code})
		}
		return
	}
	delete(i.held, code)
	i.events = append(i.events, Event{Type: EventKeyUp, Key: code})
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether key went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyDown reports whether key is currently held.
func (i *Input) IsKeyDown(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// IsShiftDown reports whether either shift key is held.
func (i *Input) IsShiftDown() bool {
	return i.held[sdl.SCANCODE_LSHIFT] || i.held[sdl.SCANCODE_RSHIFT]
}
