//go:build unit
// +build unit

package qr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuURL(t *testing.T) {
	g := NewGenerator("https://menu.example.com/")

	assert.Equal(t, "https://menu.example.com/menu/hungry-yak", g.MenuURL("hungry-yak", 0))
	assert.Equal(t, "https://menu.example.com/menu/hungry-yak?table=7", g.MenuURL("hungry-yak", 7))
}

func TestMenuPNG(t *testing.T) {
	g := NewGenerator("https://menu.example.com")

	png, err := g.MenuPNG("hungry-yak", 3)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
