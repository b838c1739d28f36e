package midi

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	gomidi "gitlab.com/gomidi/midi/v2"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/tuning"
	"github.com/jsphweid/tonal/util"
)

// Detection is what a Listener reports once the held notes settle.
type Detection struct {
	Notes []tuning.Tuning
	Chord chord.Chord
	// Err is set when the held notes do not name a chord.
	Err error
}

// Listener follows live note messages and, once no note has changed for the
// debounce delay, reports the chord formed by the held notes.
type Listener struct {
	mu        sync.Mutex
	held      map[uint8]bool
	debounced func(func())
	report    func(Detection)
}

func NewListener(delay time.Duration, report func(Detection)) *Listener {
	return &Listener{
		held:      make(map[uint8]bool),
		debounced: debounce.New(delay),
		report:    report,
	}
}

// Handle is meant to be passed to midi.ListenTo.
func (l *Listener) Handle(msg gomidi.Message, _ int32) {
	var ch, key, vel uint8
	l.mu.Lock()
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		l.held[key] = true
	case msg.GetNoteEnd(&ch, &key):
		delete(l.held, key)
	default:
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	l.debounced(l.analyze)
}

// Held returns the currently sounding note numbers in ascending order.
func (l *Listener) Held() []uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return util.GetKeys(l.held)
}

func (l *Listener) analyze() {
	notes := l.Held()
	if len(notes) == 0 {
		return
	}
	c, tunings, err := AnalyzeNotes(notes)
	l.report(Detection{Notes: tunings, Chord: c, Err: err})
}
