package ebitengine

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	ui "github.com/go-theft-auto/ui"
)

func TestKeyMapping(t *testing.T) {
	assert.Equal(t, ui.KeyReturn, ebitenKeyToUIKey(ebiten.KeyEnter))
	assert.Equal(t, ui.KeyReturn, ebitenKeyToUIKey(ebiten.KeyNumpadEnter))
	assert.Equal(t, ui.KeyLeft, ebitenKeyToUIKey(ebiten.KeyArrowLeft))
	assert.Equal(t, ui.KeyV, ebitenKeyToUIKey(ebiten.KeyV))
	assert.Equal(t, ui.KeyNone, ebitenKeyToUIKey(ebiten.KeyF1))
}

func TestBlendMapping(t *testing.T) {
	assert.Equal(t, ebiten.BlendSourceOver, blendOf(ui.BlendAlpha))
	assert.Equal(t, ebiten.BlendLighter, blendOf(ui.BlendAdditive))
	assert.Equal(t, ebiten.BlendCopy, blendOf(ui.BlendNone))
	assert.Equal(t, ebiten.BlendFactorDestinationColor, blendOf(ui.BlendMultiply).BlendFactorSourceRGB)
}

func TestToColorKeepsComponents(t *testing.T) {
	c := toColor(ui.RGBA(10, 20, 30, 40))
	assert.Equal(t, uint8(10), c.R)
	assert.Equal(t, uint8(20), c.G)
	assert.Equal(t, uint8(30), c.B)
	assert.Equal(t, uint8(40), c.A)
}
