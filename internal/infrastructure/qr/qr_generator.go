package qr

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator renders QR codes pointing at a restaurant's public menu page.
type Generator struct {
	baseURL string
	size    int
}

// NewGenerator creates a Generator. baseURL is the frontend origin the QR
// links into, e.g. https://myrestro.example.com.
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		size:    512,
	}
}

// MenuURL returns the public menu URL for a restaurant, optionally pinned
// to a table.
func (g *Generator) MenuURL(slug string, tableID uint) string {
	if tableID == 0 {
		return fmt.Sprintf("%s/menu/%s", g.baseURL, slug)
	}
	return fmt.Sprintf("%s/menu/%s?table=%d", g.baseURL, slug, tableID)
}

// MenuPNG renders the menu URL as a PNG QR code.
func (g *Generator) MenuPNG(slug string, tableID uint) ([]byte, error) {
	png, err := qrcode.Encode(g.MenuURL(slug, tableID), qrcode.Medium, g.size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
