package ecs

import (
	"github.com/phanxgames/evergreen"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ArrangementEventType is the Donburi event type for arrangement requests.
var ArrangementEventType = events.NewEventType[evergreen.Arrangement]()

// DonburiSignal is an evergreen.Signal that follows the last processed
// ArrangementEventType event of a world.
type DonburiSignal struct {
	world donburi.World
	state evergreen.Arrangement
}

// NewDonburiSignal subscribes a signal to world. It starts Assembled and
// changes when queued events are processed with ProcessEvents or
// events.ProcessAllEvents.
func NewDonburiSignal(world donburi.World) *DonburiSignal {
	s := &DonburiSignal{world: world, state: evergreen.Assembled}
	ArrangementEventType.Subscribe(world, s.onArrangement)
	return s
}

func (s *DonburiSignal) onArrangement(_ donburi.World, a evergreen.Arrangement) {
	s.state = a
}

// Arrangement returns the last processed arrangement.
func (s *DonburiSignal) Arrangement() evergreen.Arrangement {
	return s.state
}

// ProcessEvents delivers queued arrangement events of the signal's world.
func (s *DonburiSignal) ProcessEvents() {
	ArrangementEventType.ProcessEvents(s.world)
}

// Publish queues an arrangement request on world.
func Publish(world donburi.World, a evergreen.Arrangement) {
	ArrangementEventType.Publish(world, a)
}
