package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(-34.90, -56.18))
	assert.True(t, ValidateCoordinates(90, 180))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, ValidateRadius(500))
	assert.False(t, ValidateRadius(0))
	assert.False(t, ValidateRadius(60000))
}
