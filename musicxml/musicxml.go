// Package musicxml renders scales and progressions as partwise MusicXML.
package musicxml

import (
	"fmt"

	"github.com/pkg/errors"
	xml "github.com/subchen/go-xmldom"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/scale"
	"github.com/jsphweid/tonal/tuning"
)

const pi = `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 3.0 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">`

const partID = "P1"

var kinds = map[chord.Quality]string{
	chord.Major:           "major",
	chord.Minor:           "minor",
	chord.Diminished:      "diminished",
	chord.Augmented:       "augmented",
	chord.Major7:          "major-seventh",
	chord.Dominant7:       "dominant",
	chord.Minor7:          "minor-seventh",
	chord.MinorMajor7:     "major-minor",
	chord.HalfDiminished7: "half-diminished",
	chord.Diminished7:     "diminished-seventh",
	chord.Augmented7:      "augmented-seventh",
	chord.Major6:          "major-sixth",
	chord.Minor6:          "minor-sixth",
	chord.Suspended2:      "suspended-second",
	chord.Suspended4:      "suspended-fourth",
	chord.Dominant9:       "dominant-ninth",
	chord.Major9:          "major-ninth",
	chord.Minor9:          "minor-ninth",
}

// Kind is the MusicXML harmony kind for q; qualities without one are "other".
func Kind(q chord.Quality) string {
	if k, ok := kinds[q]; ok {
		return k
	}
	return "other"
}

func newScore(title string) (*xml.Document, *xml.Node) {
	doc := xml.NewDocument("score-partwise")
	doc.Directives = append(doc.Directives, pi)
	doc.Root.SetAttributeValue("version", "3.0")

	w := doc.Root.CreateNode("work")
	w.CreateNode("work-title").Text = title

	pl := doc.Root.CreateNode("part-list")
	sp := pl.CreateNode("score-part").SetAttributeValue("id", partID)
	sp.CreateNode("part-name").Text = title

	part := doc.Root.CreateNode("part").SetAttributeValue("id", partID)
	return doc, part
}

func newMeasure(part *xml.Node, number int) *xml.Node {
	m := part.CreateNode("measure").SetAttributeValue("number", fmt.Sprint(number))
	if number == 1 {
		attrs := m.CreateNode("attributes")
		attrs.CreateNode("divisions").Text = "1"
		key := attrs.CreateNode("key")
		key.CreateNode("fifths").Text = "0"
		t := attrs.CreateNode("time")
		t.CreateNode("beats").Text = "4"
		t.CreateNode("beat-type").Text = "4"
		clef := attrs.CreateNode("clef")
		clef.CreateNode("sign").Text = "G"
		clef.CreateNode("line").Text = "2"
	}
	return m
}

func addPitch(n *xml.Node, t tuning.Tuning) {
	pitch := n.CreateNode("pitch")
	pitch.CreateNode("step").Text = t.Letter().String()
	if t.Accidentals() != 0 {
		pitch.CreateNode("alter").Text = fmt.Sprint(t.Accidentals())
	}
	pitch.CreateNode("octave").Text = fmt.Sprint(t.Octave())
}

func addNote(m *xml.Node, t tuning.Tuning, duration int, typ string, inChord bool) {
	n := m.CreateNode("note")
	if inChord {
		n.CreateNode("chord")
	}
	addPitch(n, t)
	n.CreateNode("duration").Text = fmt.Sprint(duration)
	n.CreateNode("voice").Text = "1"
	n.CreateNode("type").Text = typ
}

func addHarmony(m *xml.Node, c chord.Chord) {
	h := m.CreateNode("harmony")
	r := h.CreateNode("root")
	r.CreateNode("root-step").Text = c.Root().Letter().String()
	if c.Root().Accidentals() != 0 {
		r.CreateNode("root-alter").Text = fmt.Sprint(c.Root().Accidentals())
	}
	k := h.CreateNode("kind")
	k.Text = Kind(c.Quality())
	k.SetAttributeValue("text", c.Quality().Symbol())
	if bass, ok := c.Bass(); ok {
		b := h.CreateNode("bass")
		b.CreateNode("bass-step").Text = bass.Letter().String()
		if bass.Accidentals() != 0 {
			b.CreateNode("bass-alter").Text = fmt.Sprint(bass.Accidentals())
		}
	}
}

// Scale writes the scale ascending in quarter notes, four to a measure.
func Scale(s scale.Scale, octaves int, title string) (string, error) {
	notes, err := s.Generate(octaves)
	if err != nil {
		return "", errors.Wrapf(err, "rendering %s", s)
	}
	doc, part := newScore(title)
	var m *xml.Node
	for i, t := range notes {
		if i%4 == 0 {
			m = newMeasure(part, i/4+1)
		}
		addNote(m, t, 1, "quarter", false)
	}
	return doc.XMLPretty(), nil
}

// Progression writes one whole-note chord per measure with its harmony symbol.
func Progression(chords []chord.Chord, title string) (string, error) {
	doc, part := newScore(title)
	for i, c := range chords {
		notes, err := c.Components()
		if err != nil {
			return "", errors.Wrapf(err, "rendering %s", c)
		}
		m := newMeasure(part, i+1)
		addHarmony(m, c)
		for j, t := range notes {
			addNote(m, t, 4, "whole", j > 0)
		}
	}
	return doc.XMLPretty(), nil
}
