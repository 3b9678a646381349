// internal/aggregate/aggregate.go
// Package aggregate derives trope counts and per-conference summaries from rows.
package aggregate

import "github.com/mwiater/fightsongs/internal/dataset"

// ConferenceAverage is the mean trope count of one conference bucket.
type ConferenceAverage struct {
	Conference string
	Count      int
	Average    float64
}

// ConferenceGroup holds the rows of one conference bucket.
type ConferenceGroup struct {
	Conference string
	Rows       []dataset.Row
}

// Aggregates bundles the values derived once per dataset.
type Aggregates struct {
	TropeCounts        []int
	ConferenceAverages []ConferenceAverage
}

// TropeCount returns how many tropes are marked "Yes" for the row.
func TropeCount(row dataset.Row) int {
	count := 0
	for _, t := range dataset.AllTropes {
		if row.Has(t) {
			count++
		}
	}
	return count
}

// TropeCounts returns one trope count per row, in row order.
func TropeCounts(rows []dataset.Row) []int {
	counts := make([]int, len(rows))
	for i, row := range rows {
		counts[i] = TropeCount(row)
	}
	return counts
}

// GroupByConference buckets rows by conference, substituting "Unknown" for
// empty values. Buckets appear in first-seen order.
func GroupByConference(rows []dataset.Row) []ConferenceGroup {
	var groups []ConferenceGroup
	position := make(map[string]int)
	for _, row := range rows {
		conf := row.ConferenceOrUnknown()
		i, ok := position[conf]
		if !ok {
			i = len(groups)
			position[conf] = i
			groups = append(groups, ConferenceGroup{Conference: conf})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}

// ConferenceAverages returns the mean trope count per conference bucket in
// first-seen order.
func ConferenceAverages(rows []dataset.Row) []ConferenceAverage {
	groups := GroupByConference(rows)
	out := make([]ConferenceAverage, 0, len(groups))
	for _, g := range groups {
		total := 0
		for _, row := range g.Rows {
			total += TropeCount(row)
		}
		out = append(out, ConferenceAverage{
			Conference: g.Conference,
			Count:      len(g.Rows),
			Average:    float64(total) / float64(len(g.Rows)),
		})
	}
	return out
}

// Build derives every aggregate for rows.
func Build(rows []dataset.Row) Aggregates {
	return Aggregates{
		TropeCounts:        TropeCounts(rows),
		ConferenceAverages: ConferenceAverages(rows),
	}
}

// Labels returns the conference labels of averages in order.
func Labels(averages []ConferenceAverage) []string {
	labels := make([]string, len(averages))
	for i, a := range averages {
		labels[i] = a.Conference
	}
	return labels
}

// Values returns the averages in order.
func Values(averages []ConferenceAverage) []float64 {
	values := make([]float64, len(averages))
	for i, a := range averages {
		values[i] = a.Average
	}
	return values
}

// TropeFrequency is the number of rows marked "Yes" for one trope.
type TropeFrequency struct {
	Trope dataset.Trope
	Count int
}

// TropeFrequencies counts rows per trope in dataset.AllTropes order.
func TropeFrequencies(rows []dataset.Row) []TropeFrequency {
	out := make([]TropeFrequency, len(dataset.AllTropes))
	for i, t := range dataset.AllTropes {
		out[i].Trope = t
		for _, row := range rows {
			if row.Has(t) {
				out[i].Count++
			}
		}
	}
	return out
}
