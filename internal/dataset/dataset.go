// internal/dataset/dataset.go
// Package dataset loads the fight-song CSV into typed rows.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Trope is one of the nine thematic flags recorded for each fight song.
type Trope string

const (
	TropeFight     Trope = "fight"
	TropeVictory   Trope = "victory"
	TropeWinWon    Trope = "win_won"
	TropeRah       Trope = "rah"
	TropeNonsense  Trope = "nonsense"
	TropeColors    Trope = "colors"
	TropeMen       Trope = "men"
	TropeOpponents Trope = "opponents"
	TropeSpelling  Trope = "spelling"
)

// AllTropes is the closed trope set in display order. Every aggregate and
// chart iterates tropes in this order.
var AllTropes = []Trope{
	TropeFight,
	TropeVictory,
	TropeWinWon,
	TropeRah,
	TropeNonsense,
	TropeColors,
	TropeMen,
	TropeOpponents,
	TropeSpelling,
}

// UnknownConference labels rows whose conference column is empty.
const UnknownConference = "Unknown"

// Column names recognised in the header row.
const (
	columnSchool      = "school"
	columnConference  = "conference"
	columnBPM         = "bpm"
	columnSecDuration = "sec_duration"
)

// yesValue is the only cell value that marks a trope as present.
const yesValue = "Yes"

var (
	// ErrMissingSchoolColumn is returned when the header has no school column.
	ErrMissingSchoolColumn = errors.New("dataset: header has no school column")
	// ErrInvalidNumber is returned in strict mode when a numeric cell fails to parse.
	ErrInvalidNumber = errors.New("dataset: invalid numeric value")
)

// Row is one school's record.
type Row struct {
	School      string
	Conference  string
	BPM         float64
	SecDuration float64
	Tropes      map[Trope]bool
}

// ConferenceOrUnknown returns the conference, or UnknownConference when empty.
func (r Row) ConferenceOrUnknown() string {
	if r.Conference == "" {
		return UnknownConference
	}
	return r.Conference
}

// Has reports whether the trope is marked "Yes" for this row.
func (r Row) Has(t Trope) bool {
	return r.Tropes[t]
}

// ParseIssue records a numeric cell that could not be parsed.
type ParseIssue struct {
	Line   int
	School string
	Field  string
	Value  string
}

func (p ParseIssue) String() string {
	return fmt.Sprintf("line %d (%s): %s=%q is not a number", p.Line, p.School, p.Field, p.Value)
}

// Dataset is the parsed table plus any flagged cells.
type Dataset struct {
	Rows    []Row
	Issues  []ParseIssue
	Dropped int
}

// Options controls how strictly the loader treats malformed numbers.
type Options struct {
	// StrictNumbers turns numeric parse issues into a load error.
	StrictNumbers bool
}

// Load opens path and parses it with Parse.
func Load(ctx context.Context, path string, opts Options) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open dataset %q: %w", path, err)
	}
	defer file.Close()

	ds, err := Parse(ctx, file, opts)
	if err != nil {
		return Dataset{}, fmt.Errorf("parse dataset %q: %w", path, err)
	}
	return ds, nil
}

// Parse reads a CSV table with a header row. Rows with an empty school are
// dropped. Unparsable bpm or sec_duration cells become NaN and are recorded
// in Dataset.Issues; with opts.StrictNumbers they fail the load instead.
func Parse(ctx context.Context, r io.Reader, opts Options) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, ErrMissingSchoolColumn
		}
		return Dataset{}, fmt.Errorf("read header: %w", err)
	}
	index := indexHeader(header)
	if _, ok := index[columnSchool]; !ok {
		return Dataset{}, ErrMissingSchoolColumn
	}

	var ds Dataset
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return Dataset{}, fmt.Errorf("read line %d: %w", line, err)
		}

		school := cell(record, index, columnSchool)
		if school == "" {
			ds.Dropped++
			continue
		}

		row := Row{
			School:     school,
			Conference: rawCell(record, index, columnConference),
			Tropes:     make(map[Trope]bool, len(AllTropes)),
		}
		row.BPM = parseNumber(record, index, columnBPM, line, school, &ds.Issues)
		row.SecDuration = parseNumber(record, index, columnSecDuration, line, school, &ds.Issues)
		for _, t := range AllTropes {
			row.Tropes[t] = rawCell(record, index, string(t)) == yesValue
		}
		ds.Rows = append(ds.Rows, row)
	}

	if opts.StrictNumbers && len(ds.Issues) > 0 {
		errs := []error{ErrInvalidNumber}
		for _, issue := range ds.Issues {
			errs = append(errs, errors.New(issue.String()))
		}
		return Dataset{}, errors.Join(errs...)
	}
	return ds, nil
}

func indexHeader(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	return index
}

// rawCell returns the cell as written. Trope and conference values are
// compared untrimmed, so " Yes" is not a trope and " " is a conference.
func rawCell(record []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

func cell(record []string, index map[string]int, column string) string {
	return strings.TrimSpace(rawCell(record, index, column))
}

func parseNumber(record []string, index map[string]int, column string, line int, school string, issues *[]ParseIssue) float64 {
	raw := cell(record, index, column)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		*issues = append(*issues, ParseIssue{Line: line, School: school, Field: column, Value: raw})
		return math.NaN()
	}
	return value
}
