package core

import "testing"

func TestInputQueueDrainPreservesOrder(t *testing.T) {
	q := NewInputQueue()
	q.Push(NewInputEvent(ActionStart))
	q.Push(NewInputEvent(ActionJump))
	q.Push(NewClickEvent(ActionEnvelopeClick, 10, 20))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	events := q.Drain()
	want := []Action{ActionStart, ActionJump, ActionEnvelopeClick}
	for i, a := range want {
		if events[i].Action != a {
			t.Errorf("event %d = %v, expected %v", i, events[i].Action, a)
		}
	}
	if !events[2].HasPoint || events[2].X != 10 || events[2].Y != 20 {
		t.Errorf("click event lost its point: %+v", events[2])
	}

	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, got %d", q.Len())
	}
	if again := q.Drain(); again != nil {
		t.Errorf("second Drain should return nil, got %v", again)
	}
}

func TestInputQueueDrainedSliceIsIndependent(t *testing.T) {
	q := NewInputQueue()
	q.Push(NewInputEvent(ActionJump))
	events := q.Drain()

	q.Push(NewInputEvent(ActionReset))
	if events[0].Action != ActionJump {
		t.Errorf("drained slice was overwritten: %v", events[0].Action)
	}
}

func TestActionString(t *testing.T) {
	if ActionLetterStartClick.String() != "LetterStartClick" {
		t.Errorf("String() = %q", ActionLetterStartClick.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
