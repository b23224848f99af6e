package qrcode

import (
	"encoding/base64"
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"
)

// defaultSize is the PNG edge length in pixels
const defaultSize = 256

// DataURL renders content as a QR code PNG and returns it as a
// data:image/png;base64 URL, ready to drop into an <img> tag.
func DataURL(content string) (string, error) {
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, defaultSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
