// Event viewer - orbits a wireframe Earth showing detected interactions
// from an events.csv produced by the propagate command.
//
// Usage: go run ./cmd/eventview -events out/events.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/stratos/earth"
	"github.com/pthm-cable/stratos/event"
	"github.com/pthm-cable/stratos/particle"
)

const (
	windowWidth  = 1280
	windowHeight = 720

	// World units per kilometer; keeps the scene inside raylib's
	// float32-friendly range.
	worldScale = 1.0 / 1000.0
)

var (
	eventsPath = flag.String("events", "out/events.csv", "Path to events CSV")
	radiusName = flag.String("radius", "polar", "Earth radius (polar|volumetric|equatorial)")
)

func main() {
	flag.Parse()

	f, err := os.Open(*eventsPath)
	if err != nil {
		log.Fatalf("opening events: %v", err)
	}
	events, err := event.ReadCSV(f)
	f.Close()
	if err != nil {
		log.Fatalf("reading events: %v", err)
	}
	interactions := events.Flatten()

	radius := earth.Polar
	switch *radiusName {
	case "volumetric":
		radius = earth.Volumetric
	case "equatorial":
		radius = earth.Equatorial
	}

	rl.InitWindow(windowWidth, windowHeight, "stratos event viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{
		Position:   rl.NewVector3(0, 0, -18),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	pointScale := float32(3.0)
	rayLength := float32(5.0)

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		rl.BeginMode3D(camera)
		rl.DrawSphereWires(rl.NewVector3(0, 0, 0), float32(radius*worldScale), 24, 24, rl.DarkGray)

		for i := range interactions {
			drawInteraction(&interactions[i], pointScale, rayLength)
		}
		rl.EndMode3D()

		rl.DrawText(fmt.Sprintf("%d interactions", len(interactions)), 10, 10, 20, rl.RayWhite)
		rl.DrawFPS(windowWidth-100, 10)

		pointScale = gui.SliderBar(
			rl.Rectangle{X: 10, Y: 40, Width: 180, Height: 20},
			"", "point",
			pointScale, 1, 10,
		)
		rayLength = gui.SliderBar(
			rl.Rectangle{X: 10, Y: 70, Width: 180, Height: 20},
			"", "axis",
			rayLength, 0, 20,
		)

		rl.EndDrawing()
	}
}

// drawInteraction renders one interaction as a colored point plus a short
// segment along its momentum direction.
func drawInteraction(i *event.Interaction, pointScale, rayLength float32) {
	pos := rl.NewVector3(
		float32(i.Location.X*worldScale),
		float32(i.Location.Z*worldScale),
		float32(i.Location.Y*worldScale),
	)

	color := rl.SkyBlue
	switch i.Type {
	case particle.Decay:
		color = rl.Orange
	case particle.ShowerMax:
		color = rl.Red
	case particle.NeutralCurrent:
		color = rl.Green
	}

	size := 0.01 * pointScale
	rl.DrawSphere(pos, size, color)

	if rayLength > 0 {
		tip := rl.NewVector3(
			pos.X+float32(i.Direction.X)*rayLength*0.1,
			pos.Y+float32(i.Direction.Z)*rayLength*0.1,
			pos.Z+float32(i.Direction.Y)*rayLength*0.1,
		)
		rl.DrawLine3D(pos, tip, rl.Fade(color, 0.6))
	}
}
