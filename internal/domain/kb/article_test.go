package kb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	a, err := NewArticle("Reset a jammed printer", "1. Power off\n2. Open tray", "Printer")
	require.NoError(t, err)
	assert.Equal(t, "Printer", a.Category())

	_, err = NewArticle("", "body", "")
	assert.Error(t, err)

	_, err = NewArticle("title", "", "")
	assert.Error(t, err)
}

func TestArticleRevise(t *testing.T) {
	a, err := NewArticle("Wi-Fi drops", "Reboot the AP", "Network")
	require.NoError(t, err)

	require.NoError(t, a.Revise("", "Reboot the AP, then re-join", ""))
	assert.Equal(t, "Wi-Fi drops", a.Title())
	assert.Equal(t, "Reboot the AP, then re-join", a.Content())
	assert.Equal(t, "Network", a.Category())

	require.NoError(t, a.Revise("Wi-Fi keeps dropping", "", "Wi-Fi"))
	assert.Equal(t, "Wi-Fi keeps dropping", a.Title())
	assert.Equal(t, "Wi-Fi", a.Category())
}
