//go:build unit

package qr_test

import (
	"context"
	"net/url"
	"testing"

	"lift-reservation/internal/infra/qr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLRenderer_Render(t *testing.T) {
	r, err := qr.NewURLRenderer("https://qr.example.test/render?format=png", 250)
	require.NoError(t, err)

	raw, err := r.Render(context.Background(), "LT1.eyJ0aWQiOiJ4In0.c2ln")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "qr.example.test", u.Host)
	assert.Equal(t, "/render", u.Path)
	assert.Equal(t, "LT1.eyJ0aWQiOiJ4In0.c2ln", u.Query().Get("data"))
	assert.Equal(t, "250x250", u.Query().Get("size"))
	assert.Equal(t, "png", u.Query().Get("format"), "existing query parameters are kept")
}

func TestNewURLRenderer_Invalid(t *testing.T) {
	_, err := qr.NewURLRenderer("ftp://qr.example.test", 300)
	assert.Error(t, err)

	_, err = qr.NewURLRenderer("", 300)
	assert.Error(t, err)

	_, err = qr.NewURLRenderer("://nope", 300)
	assert.Error(t, err)
}

func TestURLRenderer_EmptyPayload(t *testing.T) {
	r, err := qr.NewURLRenderer("https://qr.example.test/render", 300)
	require.NoError(t, err)
	_, err = r.Render(context.Background(), "")
	assert.Error(t, err)
}
