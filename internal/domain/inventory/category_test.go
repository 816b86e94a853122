package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValid(t *testing.T) {
	assert.True(t, Category("Eléctrico").Valid())
	assert.True(t, CategoryOther.Valid())
	assert.False(t, Category("electrico").Valid())
	assert.False(t, Category("").Valid())
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cs := Categories()
	cs[0] = "mutated"
	assert.Equal(t, CategoryFluids, Categories()[0])
	assert.Len(t, cs, 10)
}

func TestBand(t *testing.T) {
	assert.Equal(t, BandLow, Band(0))
	assert.Equal(t, BandLow, Band(4))
	assert.Equal(t, BandMedium, Band(5))
	assert.Equal(t, BandMedium, Band(9))
	assert.Equal(t, BandOptimal, Band(10))
}
