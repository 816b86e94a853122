package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
	assert.Equal(t, "UTC", Location("UTC").String())

	def := Location("Mars/Olympus")
	if IsValid(DefaultTimezone) {
		assert.Equal(t, DefaultTimezone, def.String())
	} else {
		assert.Equal(t, "UTC", def.String())
	}
}
