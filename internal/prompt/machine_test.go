package prompt

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func newSeeded() *Machine {
	return NewMachine(rand.New(rand.NewPCG(42, 1)))
}

func TestNewMachine_Initial(t *testing.T) {
	m := newSeeded()
	if m.Stage() != Prompting {
		t.Errorf("stage = %v, want prompting", m.Stage())
	}
	if m.Evasive() != (Evasive{}) {
		t.Errorf("evasive = %+v, want zero (relative, untriggered)", m.Evasive())
	}
	if len(m.Hearts()) != 0 {
		t.Errorf("hearts = %d, want none", len(m.Hearts()))
	}
}

func TestAccept_AlwaysYieldsFullBatch(t *testing.T) {
	for _, evades := range []int{0, 1, 5, 50} {
		m := newSeeded()
		for i := 0; i < evades; i++ {
			m.EvadeAttempt()
		}
		m.Accept()
		if m.Stage() != Celebrating {
			t.Errorf("after %d evades: stage = %v", evades, m.Stage())
		}
		if len(m.Hearts()) != BatchSize {
			t.Errorf("after %d evades: %d hearts, want %d", evades, len(m.Hearts()), BatchSize)
		}
	}
}

func TestAccept_RegeneratesBatchEachEpisode(t *testing.T) {
	m := newSeeded()
	m.Accept()
	first := m.Snapshot().Hearts
	m.Reset()
	m.Accept()
	second := m.Hearts()
	if len(second) != BatchSize {
		t.Fatalf("second batch has %d hearts", len(second))
	}
	if reflect.DeepEqual(first, second) {
		t.Error("second episode reused the first batch")
	}
}

func TestAccept_IgnoredWhileCelebrating(t *testing.T) {
	m := newSeeded()
	m.Accept()
	before := m.Snapshot()
	m.Accept()
	if !reflect.DeepEqual(before, m.Snapshot()) {
		t.Error("second Accept changed state")
	}
}

func TestEvadeAttempt_Relocates(t *testing.T) {
	m := NewMachine(&scripted{values: []float64{0.5, 0.25}})
	m.EvadeAttempt()
	ev := m.Evasive()
	want := Evasive{Mode: Fixed, Top: 35, Left: 50, Triggered: true}
	if ev != want {
		t.Errorf("evasive = %+v, want %+v", ev, want)
	}
	if m.Stage() != Prompting {
		t.Errorf("stage = %v, want prompting", m.Stage())
	}
}

func TestEvadeAttempt_RepeatedKeepsStateConsistent(t *testing.T) {
	// identical draws for both attempts
	m := NewMachine(&scripted{values: []float64{0.1, 0.9}})
	m.EvadeAttempt()
	first := m.Evasive()
	m.EvadeAttempt()
	second := m.Evasive()
	if first != second {
		t.Errorf("identical draws gave %+v then %+v", first, second)
	}
	if !second.Triggered || second.Mode != Fixed {
		t.Errorf("evasive = %+v, want fixed and triggered", second)
	}
	if got := m.Snapshot().Attempts; got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestEvadeAttempt_BoundsOverManyAttempts(t *testing.T) {
	m := newSeeded()
	for i := 0; i < 5000; i++ {
		m.EvadeAttempt()
		ev := m.Evasive()
		if ev.Top < 20 || ev.Top >= 80 || ev.Left < 20 || ev.Left >= 80 {
			t.Fatalf("attempt %d: %+v out of bounds", i, ev)
		}
	}
}

func TestEvadeAttempt_NoOpWhileCelebrating(t *testing.T) {
	m := newSeeded()
	m.Accept()
	before := m.Snapshot()
	m.EvadeAttempt()
	if !reflect.DeepEqual(before, m.Snapshot()) {
		t.Errorf("evade while celebrating changed state: %+v -> %+v", before, m.Snapshot())
	}
}

func TestReset_RestoresUntriggeredControl(t *testing.T) {
	m := newSeeded()
	m.EvadeAttempt()
	m.EvadeAttempt()
	m.Accept()
	m.Reset()
	if m.Stage() != Prompting {
		t.Errorf("stage = %v, want prompting", m.Stage())
	}
	if ev := m.Evasive(); ev.Mode != Relative || ev.Triggered {
		t.Errorf("evasive = %+v, want relative and untriggered", ev)
	}
	if got := m.Snapshot().Attempts; got != 0 {
		t.Errorf("attempts = %d, want 0", got)
	}
	if len(m.Hearts()) != BatchSize {
		t.Errorf("reset dropped the batch: %d hearts", len(m.Hearts()))
	}
}

func TestReset_NoOpWhilePrompting(t *testing.T) {
	m := newSeeded()
	m.EvadeAttempt()
	before := m.Snapshot()
	m.Reset()
	if !reflect.DeepEqual(before, m.Snapshot()) {
		t.Error("reset while prompting changed state")
	}
}

func TestScenario_EvadeAcceptReset(t *testing.T) {
	m := newSeeded()

	m.Fire(EventEvade)
	ev := m.Evasive()
	if !ev.Triggered {
		t.Fatal("control not triggered after evade")
	}
	if ev.Top < 20 || ev.Top >= 80 || ev.Left < 20 || ev.Left >= 80 {
		t.Fatalf("placement %+v out of bounds", ev)
	}

	m.Fire(EventAccept)
	if m.Stage() != Celebrating {
		t.Fatalf("stage = %v, want celebrating", m.Stage())
	}
	if len(m.Hearts()) != 25 {
		t.Fatalf("hearts = %d, want 25", len(m.Hearts()))
	}

	m.Fire(EventReset)
	if m.Stage() != Prompting {
		t.Fatalf("stage = %v, want prompting", m.Stage())
	}
	if m.Evasive().Triggered {
		t.Fatal("control still triggered after reset")
	}
}

func TestListener_ReportsAppliedEventsOnly(t *testing.T) {
	var got []Transition
	m := NewMachine(rand.New(rand.NewPCG(5, 5)), WithListener(func(tr Transition) {
		got = append(got, tr)
	}))

	m.Reset() // ignored
	m.EvadeAttempt()
	m.Accept()
	m.EvadeAttempt() // ignored
	m.Accept()       // ignored
	m.Reset()

	want := []Transition{
		{EventEvade, Prompting, Prompting},
		{EventAccept, Prompting, Celebrating},
		{EventReset, Celebrating, Prompting},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("transitions = %+v, want %+v", got, want)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	m := newSeeded()
	m.Accept()
	v := m.Snapshot()
	v.Hearts[0].SizePixels = -1
	if m.Hearts()[0].SizePixels == -1 {
		t.Error("snapshot shares the machine's batch")
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Prompting.String(), "prompting"},
		{Celebrating.String(), "celebrating"},
		{Stage(9).String(), "unknown"},
		{Relative.String(), "relative"},
		{Fixed.String(), "fixed"},
		{EventAccept.String(), "accept"},
		{EventEvade.String(), "evade"},
		{EventReset.String(), "reset"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
