package collisions

import (
	"math/rand"

	"github.com/getawaygame/getaway/pkg/game/constants"
	gametypes "github.com/getawaygame/getaway/pkg/game/types"
	"github.com/solarlune/resolv"
)

const (
	cellSize = 16

	wallThickness = 16.0

	buildingAttempts = 160
	buildingMinSize  = 80.0
	buildingMaxSize  = 220.0
	// roads reject buildings that come within this distance
	roadClearance = 30.0

	roadSpacing = 400.0
	roadOffset  = 200.0
	roadWidth   = 100.0
)

// Rect is an axis-aligned rectangle in map coordinates.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) overlaps(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

func (r Rect) inflate(amount float64) Rect {
	return Rect{X: r.X - amount, Y: r.Y - amount, W: r.W + 2*amount, H: r.H + 2*amount}
}

// CityMap is the static map geometry: the collision space with border
// walls and building blocks, plus the road and building rectangles for
// spawning and rendering.
type CityMap struct {
	Space     *resolv.Space
	Roads     []Rect
	Buildings []Rect
}

// NewCityMap builds the city for the given seed. The same seed always
// produces the same layout.
func NewCityMap(seed int64) *CityMap {
	rng := rand.New(rand.NewSource(seed))

	m := &CityMap{
		Space: resolv.NewSpace(int(constants.MapWidth), int(constants.MapHeight), cellSize, cellSize),
	}

	// grid roads
	for y := roadOffset; y < constants.MapHeight; y += roadSpacing {
		m.Roads = append(m.Roads, Rect{X: 0, Y: y, W: constants.MapWidth, H: roadWidth})
	}
	for x := roadOffset; x < constants.MapWidth; x += roadSpacing {
		m.Roads = append(m.Roads, Rect{X: x, Y: 0, W: roadWidth, H: constants.MapHeight})
	}

	// random building blocks, kept clear of the roads
	for i := 0; i < buildingAttempts; i++ {
		w := buildingMinSize + rng.Float64()*(buildingMaxSize-buildingMinSize)
		h := buildingMinSize + rng.Float64()*(buildingMaxSize-buildingMinSize)
		b := Rect{
			X: rng.Float64() * (constants.MapWidth - w),
			Y: rng.Float64() * (constants.MapHeight - h),
			W: w,
			H: h,
		}
		ok := true
		for _, road := range m.Roads {
			if b.overlaps(road.inflate(roadClearance)) {
				ok = false
				break
			}
		}
		if ok {
			m.addBuilding(b)
		}
	}

	// border walls
	m.Space.Add(
		resolv.NewObject(0, 0, constants.MapWidth, wallThickness, gametypes.CollisionSpaceTagBuilding),
		resolv.NewObject(0, constants.MapHeight-wallThickness, constants.MapWidth, wallThickness, gametypes.CollisionSpaceTagBuilding),
		resolv.NewObject(0, wallThickness, wallThickness, constants.MapHeight-2*wallThickness, gametypes.CollisionSpaceTagBuilding),
		resolv.NewObject(constants.MapWidth-wallThickness, wallThickness, wallThickness, constants.MapHeight-2*wallThickness, gametypes.CollisionSpaceTagBuilding),
	)

	return m
}

func (m *CityMap) addBuilding(b Rect) {
	m.Buildings = append(m.Buildings, b)
	m.Space.Add(resolv.NewObject(b.X, b.Y, b.W, b.H, gametypes.CollisionSpaceTagBuilding))
}

// CollidesBuilding reports whether the given box overlaps any building.
// Used for spawn placement; per-tick movement goes through the resolv
// space instead.
func (m *CityMap) CollidesBuilding(x float64, y float64, w float64, h float64) bool {
	box := Rect{X: x, Y: y, W: w, H: h}
	for _, b := range m.Buildings {
		if box.overlaps(b) {
			return true
		}
	}
	return false
}
