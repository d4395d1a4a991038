package qr

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// URLRenderer points clients at an external QR image service. The payload is
// carried in the query string; nothing is fetched server side.
type URLRenderer struct {
	base   *url.URL
	sizePx int
}

func NewURLRenderer(baseURL string, sizePx int) (*URLRenderer, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid QR render base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid QR render base url scheme %q", u.Scheme)
	}
	if sizePx <= 0 {
		sizePx = 300
	}
	return &URLRenderer{base: u, sizePx: sizePx}, nil
}

func (r *URLRenderer) Render(_ context.Context, payload string) (string, error) {
	if payload == "" {
		return "", errors.New("empty qr payload")
	}

	u := *r.base
	q := u.Query()
	q.Set("data", payload)
	size := strconv.Itoa(r.sizePx)
	q.Set("size", size+"x"+size)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
