package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotConfigured(t *testing.T) {
	var s Store = NotConfigured{}
	ctx := context.Background()

	_, err := s.Insert(ctx, "testimonial", map[string]string{"name": "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	var out []map[string]interface{}
	assert.ErrorIs(t, s.Fetch(ctx, "testimonial", 12, &out), ErrNotConfigured)

	_, err = s.Collections(ctx)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
