package constants

const (

	// MapWidth is the width of the map in pixels
	MapWidth float64 = 3500.0
	// MapHeight is the height of the map in pixels
	MapHeight float64 = 2700.0
	// MapMargin keeps entities away from the absolute map edge
	MapMargin float64 = 5.0

	// PlayerSpeed is the speed at which the player moves on foot
	PlayerSpeed float64 = 230.0
	// Player Height
	PlayerHeight float64 = 44.0
	// Player Width
	PlayerWidth float64 = 36.0
	// Player Starting X
	PlayerStartingX float64 = MapWidth / 2
	// Player Starting Y
	PlayerStartingY float64 = MapHeight / 2
	// PlayerMaxHealth is the health cap for the player
	PlayerMaxHealth int = 100
	// PlayerStartingPistolAmmo is the pistol ammo a new player carries
	PlayerStartingPistolAmmo int = 80
	// PlayerStartingShotgunAmmo is the shotgun ammo a new player carries
	PlayerStartingShotgunAmmo int = 12

	// PistolCooldown is the time between pistol shots
	PistolCooldown float64 = 0.18 // seconds
	// PistolBulletSpeed is the speed of a pistol round
	PistolBulletSpeed float64 = 1080.0
	// PistolBulletTTL is the lifetime of a pistol round
	PistolBulletTTL float64 = 2.0 // seconds
	// PistolDamage is the damage of a pistol round
	PistolDamage int16 = 35

	// ShotgunCooldown is the time between shotgun shots
	ShotgunCooldown float64 = 0.9 // seconds
	// ShotgunPellets is the number of pellets per shotgun shot
	ShotgunPellets int = 6
	// ShotgunSpread is the half-angle of the shotgun pellet spread
	ShotgunSpread float64 = 0.35 // radians
	// ShotgunBulletSpeed is the speed of a shotgun pellet
	ShotgunBulletSpeed float64 = 900.0
	// ShotgunBulletTTL is the lifetime of a shotgun pellet
	ShotgunBulletTTL float64 = 1.3 // seconds
	// ShotgunDamage is the damage of a single pellet
	ShotgunDamage int16 = 18

	// BulletSize is the collision box size of a bullet
	BulletSize float64 = 8.0
	// BulletMuzzleOffset is how far from the player a bullet spawns
	BulletMuzzleOffset float64 = 24.0

	// VehicleWidth is the collision box width of a vehicle
	VehicleWidth float64 = 56.0
	// VehicleHeight is the collision box height of a vehicle
	VehicleHeight float64 = 36.0
	// VehicleMaxSpeed is the top speed of a civilian vehicle
	VehicleMaxSpeed float64 = 300.0
	// VehicleAccel is the forward acceleration of a vehicle
	VehicleAccel float64 = 700.0
	// VehicleBrake is the braking deceleration of a vehicle
	VehicleBrake float64 = 1000.0
	// VehicleFriction is the coasting speed decay factor per second
	VehicleFriction float64 = 2.5
	// VehicleTurnRate is the turn rate at full speed
	VehicleTurnRate float64 = 2.5 // radians per second
	// VehicleMaxHealth is the health cap for vehicles
	VehicleMaxHealth int16 = 100
	// VehicleExitOffset is how far from the vehicle the player is placed on exit
	VehicleExitOffset float64 = 8.0
	// InteractRadius is the maximum distance for entering a vehicle
	InteractRadius float64 = 48.0
	// NumVehicles is the number of civilian vehicles spawned at start
	NumVehicles int = 45
	// NumPoliceVehicles is the number of parked police cruisers spawned at start
	NumPoliceVehicles int = 8

	// PoliceWidth is the collision box width of a police agent
	PoliceWidth float64 = 48.0
	// PoliceHeight is the collision box height of a police agent
	PoliceHeight float64 = 48.0
	// PolicePatrolSpeed is the speed of a patrolling agent
	PolicePatrolSpeed float64 = 90.0
	// PolicePursuitSpeed is the top speed of a pursuing agent
	PolicePursuitSpeed float64 = 260.0
	// PoliceAccel is the acceleration of a pursuing agent
	PoliceAccel float64 = 300.0
	// PoliceTurnRate is the maximum turn rate of an agent
	PoliceTurnRate float64 = 1.8 // radians per second
	// PoliceHitpoints is the health of a police agent
	PoliceHitpoints int16 = 50
	// DetectionRadius is the distance at which police notice the player
	DetectionRadius float64 = 420.0
	// DisengageRadius is the distance beyond which pursuit can lapse
	DisengageRadius float64 = 700.0
	// DisengageDuration is how long the player must stay beyond the
	// disengage radius before a pursuing agent returns to patrol
	DisengageDuration float64 = 4.0 // seconds
	// PoliceContactDamagePerSecond is the damage a pursuing agent deals
	// while in contact with the player
	PoliceContactDamagePerSecond float64 = 20.0
	// NumPolice is the number of police agents spawned at start
	NumPolice int = 18

	// RecentFireWindow is how long after a shot the player still counts
	// as having fired recently
	RecentFireWindow float64 = 8.0 // seconds

	// MaxWanted is the wanted level cap
	MaxWanted float64 = 5.0
	// WantedDecayPerSecond is the passive wanted level decay
	WantedDecayPerSecond float64 = 0.02
	// ReinforceBaseInterval is the base interval between police reinforcements
	ReinforceBaseInterval float64 = 12.0 // seconds
	// ReinforceMinInterval is the shortest interval between reinforcements
	ReinforceMinInterval float64 = 3.0 // seconds

	// DropOffRadius is the delivery proximity for mission completion
	DropOffRadius float64 = 50.0
	// MissionRewardBase is the minimum mission reward
	MissionRewardBase int = 200
	// MissionRewardSpread is the random extra reward range
	MissionRewardSpread int = 400
	// MissionDropOffMargin keeps drop-off points away from the map edge
	MissionDropOffMargin float64 = 200.0

	// HUDMessageTTL is how long a HUD message stays visible
	HUDMessageTTL float64 = 3.0 // seconds
	// HUDMessageLimit is the maximum number of queued HUD messages
	HUDMessageLimit int = 8

	// MaxDeltaTime caps the simulation timestep of a single tick
	MaxDeltaTime float64 = 0.25 // seconds
)
