package system

import (
	"fmt"

	"github.com/milk9111/scenekit/scene"
)

// FireOutcome records one fired timeline event and whatever its callback
// returned or panicked with. Outcomes are reported, never re-raised, so one
// bad callback cannot abort its siblings or the frame.
type FireOutcome struct {
	Event *scene.TimelineEvent
	Err   error
}

// TimelineStep advances scene elapsed time by dt and fires every unfired
// event whose FireTime has been crossed (threshold crossing, not exact
// equality). Fired is set before the callback runs, so a callback that
// advances time or fails cannot re-enter its own event.
func TimelineStep(s *scene.Scene, dt float64) []FireOutcome {
	s.Elapsed += dt

	var outcomes []FireOutcome
	for _, ev := range s.Events {
		if ev.Fired || ev.FireTime > s.Elapsed {
			continue
		}
		ev.Fired = true
		outcomes = append(outcomes, FireOutcome{Event: ev, Err: fire(s, ev)})
	}
	return outcomes
}

func fire(s *scene.Scene, ev *scene.TimelineEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("timeline: callback at t=%g panicked: %v", ev.FireTime, r)
		}
	}()
	if ev.Fn == nil {
		return nil
	}
	return ev.Fn(s)
}
