package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadImageFile(t *testing.T) {
	data, err := readImageFile("../../example/assets/white.png")
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = readImageFile("../../go.mod")
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = readImageFile("no-such-file.png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotImage)
}
