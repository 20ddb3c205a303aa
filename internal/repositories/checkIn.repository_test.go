package repositories

import (
	"testing"

	. "lunara/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCapCheckIns(t *testing.T) {
	window := []*CheckIn{
		{FeelingTags: []string{"calm"}},
		{FeelingTags: []string{"tired"}},
		{FeelingTags: []string{"anxious"}},
	}

	capped := capCheckIns(window, 2)
	assert.Len(t, capped, 2)
	assert.Equal(t, window[0], capped[0], "cap keeps the newest entries")
	assert.Equal(t, window[1], capped[1])

	assert.Len(t, capCheckIns(window, 3), 3)
	assert.Len(t, capCheckIns(window, 10), 3)
	assert.Len(t, capCheckIns(window, 0), 3)
	assert.Empty(t, capCheckIns(nil, 5))
}
