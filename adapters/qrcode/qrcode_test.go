package qrcode

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURL(t *testing.T) {
	url, err := DataURL("otpauth://totp/Vouch:a@x.com?secret=JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestDataURL_EmptyContent(t *testing.T) {
	_, err := DataURL("")
	assert.Error(t, err)
}
