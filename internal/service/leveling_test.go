package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marauder-server/internal/service"
)

func TestLevelForExperience(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1001, 2},
		{2500, 3},
		{10000, 11},
		{-50, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.level, service.LevelForExperience(c.xp), "xp=%d", c.xp)
	}
}

func TestWithinBoundingBox(t *testing.T) {
	// Точка на границе бокса считается внутри
	assert.True(t, service.WithinBoundingBox(51.5, -0.1, 51.6, -0.1, 0.1))
	assert.True(t, service.WithinBoundingBox(51.5, -0.1, 51.45, -0.05, 0.1))
	assert.False(t, service.WithinBoundingBox(51.5, -0.1, 51.61, -0.1, 0.1))
	assert.False(t, service.WithinBoundingBox(51.5, -0.1, 51.5, -0.21, 0.1))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, service.ValidCoordinates(0, 0))
	assert.True(t, service.ValidCoordinates(-90, 180))
	assert.False(t, service.ValidCoordinates(90.01, 0))
	assert.False(t, service.ValidCoordinates(0, -180.5))
}
