package sentinel

import "testing"

func TestHandle_FiresOncePerEntry(t *testing.T) {
	fired := 0
	h := Arm(1000, 50, func() { fired++ })

	// Far away: nothing happens.
	h.Observe(100)
	h.Observe(500)
	if fired != 0 {
		t.Fatalf("fired = %d before entering the zone, want 0", fired)
	}

	// Entering the proximity zone fires exactly once.
	h.Observe(950)
	if fired != 1 {
		t.Fatalf("fired = %d on zone entry, want 1", fired)
	}

	// Staying inside does not re-fire.
	h.Observe(960)
	h.Observe(1000)
	h.Observe(1200)
	if fired != 1 {
		t.Fatalf("fired = %d while continuously inside, want 1", fired)
	}
}

func TestHandle_RearmsOnFreshEntry(t *testing.T) {
	fired := 0
	h := Arm(1000, 50, func() { fired++ })

	h.Observe(950) // enter
	h.Observe(800) // leave
	h.Observe(950) // enter again

	if fired != 2 {
		t.Errorf("fired = %d after two distinct entries, want 2", fired)
	}
}

func TestHandle_Cancel(t *testing.T) {
	fired := 0
	h := Arm(1000, 50, func() { fired++ })

	h.Cancel()
	if !h.Cancelled() {
		t.Error("Cancelled() = false after Cancel")
	}

	h.Observe(950)
	h.Observe(800)
	h.Observe(1000)
	if fired != 0 {
		t.Errorf("fired = %d after Cancel, want 0", fired)
	}
}

func TestHandle_CancelWhileInside(t *testing.T) {
	fired := 0
	h := Arm(1000, 50, func() { fired++ })

	h.Observe(950)
	h.Cancel()
	h.Observe(800)
	h.Observe(950)

	if fired != 1 {
		t.Errorf("fired = %d, want 1 (only the pre-cancel entry)", fired)
	}
}

func TestArm_DefaultProximity(t *testing.T) {
	fired := 0
	h := Arm(1000, 0, func() { fired++ })

	h.Observe(1000 - DefaultProximity - 1)
	if fired != 0 {
		t.Fatalf("fired = %d just outside the default zone, want 0", fired)
	}

	h.Observe(1000 - DefaultProximity)
	if fired != 1 {
		t.Errorf("fired = %d at the default zone boundary, want 1", fired)
	}
}

func TestHandle_ImmediateEntry(t *testing.T) {
	// A sentinel already inside the zone at the first observation fires on
	// that observation.
	fired := 0
	h := Arm(100, 50, func() { fired++ })

	h.Observe(90)
	if fired != 1 {
		t.Errorf("fired = %d on first observation inside the zone, want 1", fired)
	}
}
