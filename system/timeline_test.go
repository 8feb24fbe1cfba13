package system

import (
	"errors"
	"testing"

	"github.com/milk9111/scenekit/scene"
)

func TestTimelineFiresOnThresholdCrossing(t *testing.T) {
	s := scene.New("test")
	s.Elapsed = 4.9
	fired := 0
	s.At(5, func(*scene.Scene) error {
		fired++
		return nil
	})

	// One coarse step jumps from 4.9 to 5.3; crossing fires, equality is
	// not required.
	TimelineStep(s, 0.4)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	for i := 0; i < 10; i++ {
		TimelineStep(s, 0.4)
	}
	if fired != 1 {
		t.Fatalf("fired = %d after further steps, want exactly 1", fired)
	}
}

func TestTimelineFiresInRegistrationOrder(t *testing.T) {
	s := scene.New("test")
	var order []string
	s.At(1, func(*scene.Scene) error { order = append(order, "first"); return nil })
	s.At(0.5, func(*scene.Scene) error { order = append(order, "second"); return nil })

	TimelineStep(s, 2)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("fire order = %v, want [first second] (registration order)", order)
	}
}

func TestTimelineIsolatesCallbackErrors(t *testing.T) {
	s := scene.New("test")
	boom := errors.New("boom")
	ran := false
	s.At(1, func(*scene.Scene) error { return boom })
	s.At(1, func(*scene.Scene) error { ran = true; return nil })

	outcomes := TimelineStep(s, 2)

	if !ran {
		t.Fatal("an erroring callback must not abort its siblings")
	}
	if len(outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(outcomes))
	}
	if !errors.Is(outcomes[0].Err, boom) {
		t.Fatalf("outcomes[0].Err = %v, want boom", outcomes[0].Err)
	}
	if outcomes[1].Err != nil {
		t.Fatalf("outcomes[1].Err = %v, want nil", outcomes[1].Err)
	}
}

func TestTimelineIsolatesCallbackPanics(t *testing.T) {
	s := scene.New("test")
	ran := false
	s.At(1, func(*scene.Scene) error { panic("kaboom") })
	s.At(1, func(*scene.Scene) error { ran = true; return nil })

	outcomes := TimelineStep(s, 2)

	if !ran {
		t.Fatal("a panicking callback must not abort its siblings")
	}
	if outcomes[0].Err == nil {
		t.Fatal("panic should surface as an outcome error")
	}
}

func TestTimelineMarksFiredBeforeInvoking(t *testing.T) {
	s := scene.New("test")
	fired := 0
	s.At(1, func(sc *scene.Scene) error {
		fired++
		// A callback that advances time past its own threshold must not
		// re-enter itself.
		sc.Elapsed += 100
		return nil
	})

	TimelineStep(s, 2)
	TimelineStep(s, 2)

	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestTimelineKeepsFiredEvents(t *testing.T) {
	s := scene.New("test")
	ev := s.At(1, func(*scene.Scene) error { return nil })

	TimelineStep(s, 2)

	if len(s.Events) != 1 || !ev.Fired {
		t.Fatal("fired events stay registered with Fired set")
	}
}
