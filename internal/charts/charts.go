// internal/charts/charts.go
// Package charts assembles the ordered chart descriptors shown to the viewer.
package charts

import (
	"errors"

	"github.com/mwiater/fightsongs/internal/aggregate"
	"github.com/mwiater/fightsongs/internal/dataset"
)

// Kind tags a descriptor with the chart routine that draws it.
type Kind string

const (
	// KindScatter plots tempo against duration, one marker per school.
	KindScatter Kind = "scatter"
	// KindDurationByConference draws one duration distribution per conference.
	KindDurationByConference Kind = "durationByConference"
	// KindStacked stacks 0/1 trope indicators per school.
	KindStacked Kind = "stacked"
	// KindBar draws the average trope count per conference.
	KindBar Kind = "bar"
	// KindChord draws trope co-occurrence as a chord diagram.
	KindChord Kind = "chord"
)

// Order is the fixed navigation order of the chart kinds.
var Order = []Kind{KindScatter, KindDurationByConference, KindStacked, KindBar, KindChord}

// ErrNoRows is returned when there is nothing to chart.
var ErrNoRows = errors.New("charts: dataset has no rows")

const (
	scatterCaption = "The distribution for the duration of fight songs has a bimodal appearance, with most songs clustered around centers of approximately 75 BPM and 150 BPM. BPM does not appear to have a strong correlation with duration: songs with a higher BPM (i.e. a quicker tempo) still largely fall into the common range of a duration between approximately 20 seconds and 120 seconds. Texas A&M, with a song duration of 172 seconds, is a noticeable outlier. They do say that everything is bigger in Texas!"

	durationCaption = "The Big Ten has the highest median song duration and the widest overall spread. The ACC and Pac-12 fall in the middle, with moderate medians and some outliers. The Big 12 and SEC tend to have shorter median durations, though the SEC includes a notable long-duration outlier that increases its overall range. The Independent category does not have enough data to be fully comparable. A substantial amount of overlap between these boxes means that we cannot claim that one conference has meaningfully longer songs than others, but the trends do suggest that the Big Ten tends towards longer songs, and the Big 12 and SEC towards shorter ones."
)

// Descriptor describes one chart: its kind, title and the exact data its
// renderer needs. Which payload fields are set depends on Kind.
type Descriptor struct {
	Kind    Kind
	Title   string
	Caption string

	// Rows backs scatter, durationByConference, stacked and chord.
	Rows []dataset.Row
	// Tropes backs stacked and chord.
	Tropes []dataset.Trope
	// Schools backs stacked, in row order.
	Schools []string
	// Labels and Values back bar.
	Labels []string
	Values []float64
}

// Build returns one descriptor per kind, in Order. Slices are copied
// so later changes to the inputs do not leak into the descriptors.
func Build(rows []dataset.Row, agg aggregate.Aggregates) ([]Descriptor, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	rows = append([]dataset.Row(nil), rows...)
	tropes := append([]dataset.Trope(nil), dataset.AllTropes...)

	byKind := map[Kind]Descriptor{
		KindScatter: {
			Kind:    KindScatter,
			Title:   "Tempo vs. Duration",
			Caption: scatterCaption,
			Rows:    rows,
		},
		KindDurationByConference: {
			Kind:    KindDurationByConference,
			Title:   "Song Duration by Conference",
			Caption: durationCaption,
			Rows:    rows,
		},
		KindStacked: {
			Kind:    KindStacked,
			Title:   "Stacked Tropes by School",
			Rows:    rows,
			Tropes:  tropes,
			Schools: Schools(rows),
		},
		KindBar: {
			Kind:   KindBar,
			Title:  "Average Trope Count by Conference",
			Labels: aggregate.Labels(agg.ConferenceAverages),
			Values: aggregate.Values(agg.ConferenceAverages),
		},
		KindChord: {
			Kind:   KindChord,
			Title:  "Trope Relationships Chord Chart",
			Rows:   rows,
			Tropes: tropes,
		},
	}

	descriptors := make([]Descriptor, len(Order))
	for i, kind := range Order {
		descriptors[i] = byKind[kind]
	}
	return descriptors, nil
}

// Schools returns the school names of rows in order.
func Schools(rows []dataset.Row) []string {
	schools := make([]string, len(rows))
	for i, r := range rows {
		schools[i] = r.School
	}
	return schools
}
