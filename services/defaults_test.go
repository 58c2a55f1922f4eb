package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSurgeries(t *testing.T) {
	items := DefaultSurgeries()
	require.Len(t, items, 6)

	var bariatric, general int
	for _, s := range items {
		switch s.Type {
		case "bariatric":
			bariatric++
		case "general":
			general++
		}
	}
	assert.Equal(t, 3, bariatric)
	assert.Equal(t, 3, general)
	// Fixed order: bariatric procedures come first.
	assert.Equal(t, "bariatric", items[0].Type)
	assert.Equal(t, "general", items[5].Type)
}

func TestDefaultDoctorProfile(t *testing.T) {
	p := DefaultDoctorProfile()
	assert.NotEmpty(t, p.FullName)
	assert.NotEmpty(t, p.Bio)
	assert.Greater(t, p.ExperienceYears, 0)
}
