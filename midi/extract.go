package midi

import (
	"sort"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/tuning"
	"github.com/jsphweid/tonal/util"
)

// AnalyzeNotes spells MIDI note numbers and names the chord they form.
func AnalyzeNotes(notes []uint8) (chord.Chord, []tuning.Tuning, error) {
	tunings := make([]tuning.Tuning, 0, len(notes))
	for _, n := range notes {
		t, err := tuning.FromNumber(int(n))
		if err != nil {
			return chord.Chord{}, nil, err
		}
		tunings = append(tunings, t)
	}
	c, err := chord.AnalyzeFrom(tunings)
	if err != nil {
		return chord.Chord{}, tunings, err
	}
	return c, tunings, nil
}

func reduceEvents(s *smf.SMF) []model.ReducedEvent {
	var reducedEvents []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			msg := gomidi.Message(event.Message)
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset: s.TimeAt(absTicks),
					Note:   key,
				})
			case msg.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})
	return reducedEvents
}

// ExtractChords sweeps every note-on and note-off across all tracks and
// reports each distinct sounding set, in time order, that names a chord.
// Events sharing a timestamp collapse into the set left after all of them.
func ExtractChords(s *smf.SMF) ([]model.ChordEvent, error) {
	var chords []model.ChordEvent
	pressed := make(map[uint8]bool)

	emit := func(offset int64) {
		if len(pressed) < 2 || len(pressed) > constants.MaxChordNotes {
			return
		}
		notes := util.GetKeys(pressed)
		c, _, err := AnalyzeNotes(notes)
		if err != nil {
			return
		}
		// storing it in millis; 32 bits of millis covers any realistic file
		chords = append(chords, model.ChordEvent{
			OffsetMs: uint32(offset / 1000),
			Notes:    notes,
			Symbol:   c.String(),
		})
	}

	events := reduceEvents(s)
	for i, evt := range events {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		if i == len(events)-1 || events[i+1].Offset != evt.Offset {
			emit(evt.Offset)
		}
	}
	return chords, nil
}
