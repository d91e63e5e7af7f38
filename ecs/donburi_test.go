package ecs

import (
	"testing"

	"github.com/phanxgames/evergreen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSignal(t *testing.T) {
	world := donburi.NewWorld()
	sig := NewDonburiSignal(world)
	if sig == nil {
		t.Fatal("NewDonburiSignal returned nil")
	}
	if sig.Arrangement() != evergreen.Assembled {
		t.Errorf("initial = %s, want assembled", sig.Arrangement())
	}
}

func TestDonburiSignal_Publish(t *testing.T) {
	world := donburi.NewWorld()
	sig := NewDonburiSignal(world)

	Publish(world, evergreen.Scattered)

	// Events are queued until processed.
	if sig.Arrangement() != evergreen.Assembled {
		t.Fatal("arrangement changed before processing")
	}
	sig.ProcessEvents()
	if sig.Arrangement() != evergreen.Scattered {
		t.Errorf("arrangement = %s, want scattered", sig.Arrangement())
	}

	Publish(world, evergreen.Assembled)
	Publish(world, evergreen.Scattered)
	Publish(world, evergreen.Assembled)
	events.ProcessAllEvents(world)
	if sig.Arrangement() != evergreen.Assembled {
		t.Errorf("last event not applied: %s", sig.Arrangement())
	}
}

func TestDonburiSignal_ImplementsSignal(t *testing.T) {
	world := donburi.NewWorld()
	var sig evergreen.Signal = NewDonburiSignal(world)
	_ = sig // compile-time interface check
}

func TestDonburiSignal_DrivesScene(t *testing.T) {
	cfg := evergreen.DefaultConfig()
	cfg.NeedleCount = 200
	cfg.GiftCount = 10
	cfg.SphereCount = 10
	cfg.MiscCount = 10
	cfg.Seed = 2
	scene, err := evergreen.NewScene(cfg)
	if err != nil {
		t.Fatal(err)
	}

	world := donburi.NewWorld()
	sig := NewDonburiSignal(world)
	scene.SetSignal(sig)

	for range 300 {
		scene.Update(1.0 / 60)
	}
	if scene.Progress() < 0.99 {
		t.Fatalf("progress = %v, want assembled", scene.Progress())
	}

	Publish(world, evergreen.Scattered)
	events.ProcessAllEvents(world)
	for range 300 {
		scene.Update(1.0 / 60)
	}
	if scene.Progress() > 0.01 {
		t.Errorf("progress = %v, want scattered", scene.Progress())
	}
}

func TestDonburiSignal_SeparateWorlds(t *testing.T) {
	a, b := donburi.NewWorld(), donburi.NewWorld()
	sigA := NewDonburiSignal(a)
	sigB := NewDonburiSignal(b)

	Publish(a, evergreen.Scattered)
	events.ProcessAllEvents(a)
	events.ProcessAllEvents(b)

	if sigA.Arrangement() != evergreen.Scattered {
		t.Error("world a signal not updated")
	}
	if sigB.Arrangement() != evergreen.Assembled {
		t.Error("world b signal changed by another world's event")
	}
}
