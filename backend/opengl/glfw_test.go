package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	ui "github.com/go-theft-auto/ui"
)

func TestGLFWKeyMapping(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want ui.Key
	}{
		{glfw.KeyEnter, ui.KeyReturn},
		{glfw.KeyKPEnter, ui.KeyReturn},
		{glfw.KeyEscape, ui.KeyEscape},
		{glfw.KeyBackspace, ui.KeyBackspace},
		{glfw.KeyHome, ui.KeyHome},
		{glfw.KeyV, ui.KeyV},
		{glfw.KeyF1, ui.KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, glfwKeyToUIKey(tt.in), "key %d", tt.in)
	}
}

func TestGLFWMouseMapping(t *testing.T) {
	b, ok := glfwMouseButtonToUI(glfw.MouseButtonLeft)
	assert.True(t, ok)
	assert.Equal(t, ui.MouseButtonPrimary, b)

	b, ok = glfwMouseButtonToUI(glfw.MouseButtonRight)
	assert.True(t, ok)
	assert.Equal(t, ui.MouseButtonSecondary, b)

	_, ok = glfwMouseButtonToUI(glfw.MouseButton4)
	assert.False(t, ok)
}

func TestOrthoMatrixMapsCorners(t *testing.T) {
	m := orthoMatrix(0, 800, 600, 0, -1, 1)
	// x' = m[0]*x + m[12]
	assert.InDelta(t, -1, m[0]*0+m[12], 1e-6)
	assert.InDelta(t, 1, m[0]*800+m[12], 1e-6)
	// Top of the screen maps to +1.
	assert.InDelta(t, 1, m[5]*0+m[13], 1e-6)
	assert.InDelta(t, -1, m[5]*600+m[13], 1e-6)
}
