package constants

const (
	// TicksPerSecond is the fixed simulation rate; velocities handed to the
	// physics world are expressed in pixels per tick.
	TicksPerSecond = 60
	// Gravity is the downward acceleration in pixels per second squared.
	Gravity float64 = 1000.0

	// SpawnMargin keeps spawned entities this far from either horizontal edge
	SpawnMargin float64 = 50.0
	// SpawnY is the fixed spawn height
	SpawnY float64 = 85.0
	// EntityRadius is the collision radius of gift boxes and snowballs
	EntityRadius float64 = 45.0
	// EntityMass is the mass of gift boxes and snowballs
	EntityMass float64 = 1.0
	// EntityRestitution is the bounciness of gift boxes and snowballs
	EntityRestitution float64 = 0.8
	// EntitySpriteScale is the texture scale for gift boxes and snowballs
	EntitySpriteScale float64 = 0.17
	// GiftBoxProbability is the chance a spawn produces a gift box
	GiftBoxProbability float64 = 0.5

	// GroundHeight is the height of the static ground rectangle
	GroundHeight float64 = 100.0
	// GroundOffset is the distance from the bottom edge to the ground centre
	GroundOffset float64 = 25.0

	// HoopOuterRadius is the radius of the textured hoop ring
	HoopOuterRadius float64 = 80.0
	// HoopInnerRadius is the radius of the scoring sensor
	HoopInnerRadius float64 = 60.0
	// HoopSpriteScale is the texture scale for the hoop
	HoopSpriteScale float64 = 0.25
	// HoopOpeningAngle is the angular width in radians of the gap at the top of the rim
	HoopOpeningAngle float64 = 2.2
	// HoopRimThickness is the radius of the rim segments
	HoopRimThickness float64 = 4.0
	// HoopRimSegments is the number of segments a closed rim would have
	HoopRimSegments = 24
	// StaticRestitution is the bounciness of the ground and the hoop rim
	StaticRestitution float64 = 1.0

	// DragStiffness controls how elastic the pointer drag constraint feels
	DragStiffness float64 = 0.2
	// DragMaxForce bounds the force the drag constraint may apply
	DragMaxForce float64 = 50000.0
	// DragGrabRadius is how far from a shape a press still grabs it
	DragGrabRadius float64 = 5.0

	// MaxReleaseVelocity caps the drag displacement used for a throw
	MaxReleaseVelocity float64 = 20.0
	// ReleaseMultiplier is applied to every thrown entity
	ReleaseMultiplier float64 = 0.2
	// GiftBoxReleaseMultiplier is the heavier gift box rate
	GiftBoxReleaseMultiplier float64 = 0.15
	// SnowballReleaseMultiplier is the snowball rate
	SnowballReleaseMultiplier float64 = 0.2

	// GiftBoxReward is added to the score when a gift box lands in the hoop
	GiftBoxReward int = 10
	// SnowballPenalty is subtracted from the score when a snowball lands in the hoop
	SnowballPenalty int = 5

	// EventQueueSize bounds the number of pending input events
	EventQueueSize = 1024
)

// Texture keys referenced by body definitions.
const (
	TextureHoop     = "hoop"
	TextureGiftBox  = "gift"
	TextureSnowball = "snowball"
)
