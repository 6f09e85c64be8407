package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Orbit physics
const (
	OrbitAccel    = 0.004
	OrbitFriction = 0.85
	MaxOrbitSpeed = 0.05

	ZoomAccel    = 0.02
	ZoomFriction = 0.8
	WheelZoom    = 0.08

	MinPitch = 0.05
	MaxPitch = 1.45

	FieldOfView = 45.0
	NearPlane   = 0.5
	FarPlane    = 5000.0
)

// Camera orbits a target point. Yaw and pitch are in radians, Distance in
// world units.
type Camera struct {
	Target   mgl32.Vec3
	Yaw      float64
	Pitch    float64
	Distance float64

	MinDistance, MaxDistance float64

	// Velocities
	vYaw, vPitch, vZoom float64
}

func NewCamera() *Camera {
	return &Camera{
		Yaw:         math.Pi / 4,
		Pitch:       0.6,
		Distance:    300,
		MinDistance: 10,
		MaxDistance: 2000,
	}
}

// Frame points the camera at the middle of a mesh and backs off far enough
// to see all of it.
func (c *Camera) Frame(width, depth int, meshHeight float32) {
	c.Target = mgl32.Vec3{0, meshHeight / 4, 0}
	span := float64(max(width, depth))
	c.Distance = span * 1.2
	c.MinDistance = span * 0.1
	c.MaxDistance = span * 4
}

// Update reads orbit and zoom keys.
func (c *Camera) Update() {
	yaw, pitch, zoom := 0.0, 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		yaw = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		yaw = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		pitch = 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		pitch = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		zoom = -1
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		zoom = 1
	}
	_, wheel := ebiten.Wheel()
	c.Step(yaw, pitch, zoom, wheel)
}

// Step advances the orbit by one tick of input in [-1, 1] per axis.
func (c *Camera) Step(yaw, pitch, zoom, wheel float64) {
	c.vYaw = clampSpeed((c.vYaw + yaw*OrbitAccel) * OrbitFriction)
	c.vPitch = clampSpeed((c.vPitch + pitch*OrbitAccel) * OrbitFriction)
	c.vZoom = (c.vZoom + zoom*ZoomAccel) * ZoomFriction

	c.Yaw = math.Mod(c.Yaw+c.vYaw, 2*math.Pi)
	c.Pitch = math.Max(MinPitch, math.Min(MaxPitch, c.Pitch+c.vPitch))

	// Zoom is multiplicative so it feels the same near and far
	c.Distance *= 1 + c.vZoom - wheel*WheelZoom
	c.Distance = math.Max(c.MinDistance, math.Min(c.MaxDistance, c.Distance))
}

func clampSpeed(v float64) float64 {
	return math.Max(-MaxOrbitSpeed, math.Min(MaxOrbitSpeed, v))
}

// Eye returns the camera position.
func (c *Camera) Eye() mgl32.Vec3 {
	cp := math.Cos(c.Pitch)
	offset := mgl32.Vec3{
		float32(c.Distance * cp * math.Cos(c.Yaw)),
		float32(c.Distance * math.Sin(c.Pitch)),
		float32(c.Distance * cp * math.Sin(c.Yaw)),
	}
	return c.Target.Add(offset)
}

// ViewProjection returns the combined matrix for a viewport of w x h.
func (c *Camera) ViewProjection(w, h int) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(FieldOfView), float32(w)/float32(h), NearPlane, FarPlane)
	view := mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}
