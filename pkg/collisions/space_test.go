package collisions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCityMap_Deterministic(t *testing.T) {
	a := NewCityMap(42)
	b := NewCityMap(42)
	require.Equal(t, len(a.Buildings), len(b.Buildings))
	assert.Equal(t, a.Buildings, b.Buildings)
	assert.Equal(t, a.Roads, b.Roads)
}

func TestNewCityMap_BuildingsClearOfRoads(t *testing.T) {
	m := NewCityMap(42)
	require.NotEmpty(t, m.Buildings)
	for _, b := range m.Buildings {
		for _, road := range m.Roads {
			assert.False(t, b.overlaps(road), "building %+v overlaps road %+v", b, road)
		}
	}
}

func TestCityMap_CollidesBuilding(t *testing.T) {
	m := NewCityMap(42)
	require.NotEmpty(t, m.Buildings)

	b := m.Buildings[0]
	assert.True(t, m.CollidesBuilding(b.X+1, b.Y+1, 10, 10))
	assert.False(t, m.CollidesBuilding(-100, -100, 10, 10))
}
