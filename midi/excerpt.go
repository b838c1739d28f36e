package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/tonal/logger"
	"github.com/jsphweid/tonal/util"
)

// Excerpt cuts a short preview out of mf starting at ticksOffset. Each track
// keeps its non-note events (squeezed to at most one tick apart) and its
// first maxNotes note-on/note-off events from the offset onward.
func Excerpt(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	logger.Debugf("excerpt at %d ticks, time format %v", ticksOffset, mf.TimeFormat)
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			msg := gomidi.Message(evt.Message)
			switch {
			case msg.Is(gomidi.NoteOnMsg), msg.Is(gomidi.NoteOffMsg):
				if absTicks >= ticksOffset {
					newTrack = append(newTrack, evt)
					numNoteOnOff += 1
					if numNoteOnOff >= maxNotes {
						newTrack.Close(0)
						break TrackEventLoop
					}
				}
			default:
				evt.Delta = util.Min(evt.Delta, 1)
				newTrack = append(newTrack, evt)
			}
		}
		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}
