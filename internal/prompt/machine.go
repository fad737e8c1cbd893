// Package prompt holds the Yes/No prompt's interaction logic: the
// two-stage flow, the evasive placement of the decline control and the
// heart batch shown after acceptance. It knows nothing about drawing.
package prompt

// Stage is the screen currently shown.
type Stage int

const (
	Prompting Stage = iota
	Celebrating
)

func (s Stage) String() string {
	switch s {
	case Prompting:
		return "prompting"
	case Celebrating:
		return "celebrating"
	default:
		return "unknown"
	}
}

// Mode tells the renderer how to position the decline control.
type Mode int

const (
	// Relative leaves the control at its natural spot in the layout.
	Relative Mode = iota
	// Fixed anchors the control to the viewport at Evasive.Top/Left.
	Fixed
)

func (m Mode) String() string {
	if m == Fixed {
		return "fixed"
	}
	return "relative"
}

// Evasive is the decline control's placement state.
// Top and Left are percentages of the viewport height and width and are
// only meaningful once Triggered is set.
type Evasive struct {
	Mode      Mode
	Top       float64
	Left      float64
	Triggered bool
}

// Event is an input signal from the renderer.
type Event int

const (
	EventAccept Event = iota
	EventEvade
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventAccept:
		return "accept"
	case EventEvade:
		return "evade"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Transition reports an applied event. From and To are equal for evades.
type Transition struct {
	Event Event
	From  Stage
	To    Stage
}

// View is what the renderer reads each frame.
type View struct {
	Stage    Stage
	Evasive  Evasive
	Hearts   []Particle
	Attempts int
}

// Option configures a Machine.
type Option func(*Machine)

// WithListener registers fn to be called after every applied event.
// Ignored events (no-ops) are not reported.
func WithListener(fn func(Transition)) Option {
	return func(m *Machine) {
		m.listeners = append(m.listeners, fn)
	}
}

// Machine owns the session's stage and evasive state. It is driven from a
// single input thread and is not safe for concurrent use.
type Machine struct {
	src       Source
	stage     Stage
	evasive   Evasive
	hearts    []Particle
	attempts  int
	listeners []func(Transition)
}

// NewMachine starts a session in Prompting with an untriggered control.
func NewMachine(src Source, opts ...Option) *Machine {
	m := &Machine{src: src}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) Stage() Stage { return m.stage }

func (m *Machine) Evasive() Evasive { return m.evasive }

// Hearts returns the current batch. It is only rendered while Celebrating.
func (m *Machine) Hearts() []Particle { return m.hearts }

// Accept moves Prompting to Celebrating and replaces the heart batch.
func (m *Machine) Accept() {
	if m.stage != Prompting {
		return
	}
	m.stage = Celebrating
	m.hearts = Generate(m.src, BatchSize)
	m.notify(EventAccept, Prompting, Celebrating)
}

// EvadeAttempt relocates the decline control. The stage never changes.
func (m *Machine) EvadeAttempt() {
	if m.stage != Prompting {
		return
	}
	p := Place(m.src)
	m.evasive = Evasive{
		Mode:      Fixed,
		Top:       p.Y,
		Left:      p.X,
		Triggered: true,
	}
	m.attempts++
	m.notify(EventEvade, Prompting, Prompting)
}

// Reset returns from Celebrating to a fresh Prompting episode.
// The old batch is kept; it simply isn't shown while Prompting.
func (m *Machine) Reset() {
	if m.stage != Celebrating {
		return
	}
	m.stage = Prompting
	m.evasive = Evasive{}
	m.attempts = 0
	m.notify(EventReset, Celebrating, Prompting)
}

// Fire dispatches ev to the matching transition.
func (m *Machine) Fire(ev Event) {
	switch ev {
	case EventAccept:
		m.Accept()
	case EventEvade:
		m.EvadeAttempt()
	case EventReset:
		m.Reset()
	}
}

// Snapshot copies the renderer-facing state.
func (m *Machine) Snapshot() View {
	v := View{
		Stage:    m.stage,
		Evasive:  m.evasive,
		Attempts: m.attempts,
	}
	if len(m.hearts) > 0 {
		v.Hearts = make([]Particle, len(m.hearts))
		copy(v.Hearts, m.hearts)
	}
	return v
}

func (m *Machine) notify(ev Event, from, to Stage) {
	t := Transition{Event: ev, From: from, To: to}
	for _, fn := range m.listeners {
		fn(t)
	}
}
