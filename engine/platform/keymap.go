package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/prism-engine/prism/engine/core"
)

var glfwToKey = map[glfw.Key]core.KeyCode{
	glfw.KeyEscape:    core.KEY_ESCAPE,
	glfw.KeySpace:     core.KEY_SPACE,
	glfw.KeyEnter:     core.KEY_ENTER,
	glfw.KeyTab:       core.KEY_TAB,
	glfw.KeyBackspace: core.KEY_BACKSPACE,
	glfw.KeyDelete:    core.KEY_DELETE,
	glfw.KeyLeft:      core.KEY_LEFT,
	glfw.KeyUp:        core.KEY_UP,
	glfw.KeyRight:     core.KEY_RIGHT,
	glfw.KeyDown:      core.KEY_DOWN,
}

var glfwToButton = map[glfw.MouseButton]core.Button{
	glfw.MouseButtonLeft:   core.BUTTON_LEFT,
	glfw.MouseButtonRight:  core.BUTTON_RIGHT,
	glfw.MouseButtonMiddle: core.BUTTON_MIDDLE,
}

func init() {
	// Letter, digit and function keys are contiguous in both systems.
	for i := 0; i < 26; i++ {
		glfwToKey[glfw.KeyA+glfw.Key(i)] = core.KEY_A + core.KeyCode(i)
	}
	for i := 0; i < 10; i++ {
		glfwToKey[glfw.Key0+glfw.Key(i)] = core.KEY_0 + core.KeyCode(i)
	}
	for i := 0; i < 12; i++ {
		glfwToKey[glfw.KeyF1+glfw.Key(i)] = core.KEY_F1 + core.KeyCode(i)
	}
}
