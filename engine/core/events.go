package core

import "sync"

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data is *KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data is *KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Mouse button pressed. Data is *MouseEvent.
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04
	// Mouse button released. Data is *MouseEvent.
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05
	// Mouse moved. Data is *MouseEvent with PosX/PosY set.
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	// Mouse wheel scrolled. Data is *MouseEvent with Scroll set.
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07
	// Resized/resolution changed from the OS. Data is *SystemEvent.
	EVENT_CODE_RESIZED EventCode = 0x08

	MAX_EVENT_CODE EventCode = 0xFF
)

// EventContext is the payload delivered to every listener of a code.
type EventContext struct {
	Type EventCode
	Data interface{}
}

// KeyEvent accompanies key pressed/released events.
type KeyEvent struct {
	KeyCode KeyCode
	Pressed bool
}

// MouseEvent accompanies button, move and wheel events. Positions are
// in framebuffer pixels and keep the sub-pixel precision the platform
// delivers.
type MouseEvent struct {
	Button Button
	PosX   float64
	PosY   float64
	Scroll int8
}

// SystemEvent accompanies window-level events such as resize.
type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

// FnOnEvent handles a fired event. Returning true marks the event as
// handled and stops delivery to the remaining listeners.
type FnOnEvent func(ctx EventContext) bool

type registeredEvent struct {
	callback FnOnEvent
}

type eventSystemState struct {
	registered map[EventCode][]*registeredEvent
}

var onceEvent sync.Once
var eventInitialized bool = false
var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	if eventInitialized {
		return false
	}
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			registered: make(map[EventCode][]*registeredEvent),
		}
	})
	eventInitialized = true
	return true
}

func EventSystemShutdown() error {
	if eventState != nil {
		eventState.registered = make(map[EventCode][]*registeredEvent)
	}
	eventInitialized = false
	return nil
}

// EventRegister subscribes the callback to the given code. Listeners are
// invoked in registration order until one reports the event as handled.
func EventRegister(code EventCode, onEvent FnOnEvent) bool {
	if !eventInitialized || onEvent == nil {
		return false
	}
	eventState.registered[code] = append(eventState.registered[code], &registeredEvent{
		callback: onEvent,
	})
	return true
}

// EventFire delivers the context to the listeners of its code. Returns
// true if some listener handled the event.
func EventFire(ctx EventContext) bool {
	if !eventInitialized {
		return false
	}
	for _, e := range eventState.registered[ctx.Type] {
		if e.callback(ctx) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}
