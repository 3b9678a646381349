package dataset

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `school,conference,bpm,sec_duration,fight,victory,win_won,rah,nonsense,colors,men,opponents,spelling
School A,Big Ten,140,60,Yes,Yes,No,No,No,No,No,No,No
,Big Ten,120,50,Yes,No,No,No,No,No,No,No,No
School B,,90,abc,Yes,No,No,No,No,No,No,No,No
School C,SEC,76,45,yes,No,No,Yes,No,No,No,No,Yes
`

func TestParseDropsRowsWithoutSchool(t *testing.T) {
	ds, err := Parse(context.Background(), strings.NewReader(sampleCSV), Options{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(ds.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(ds.Rows))
	}
	if ds.Dropped != 1 {
		t.Fatalf("expected 1 dropped row, got %d", ds.Dropped)
	}
	if ds.Rows[0].School != "School A" || ds.Rows[2].School != "School C" {
		t.Fatalf("unexpected row order: %+v", ds.Rows)
	}
}

func TestParseTropesOnlyExactYes(t *testing.T) {
	ds, err := Parse(context.Background(), strings.NewReader(sampleCSV), Options{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	c := ds.Rows[2]
	if c.Has(TropeFight) {
		t.Fatalf("lowercase yes must not count as present")
	}
	if !c.Has(TropeRah) || !c.Has(TropeSpelling) {
		t.Fatalf("expected rah and spelling present, got %+v", c.Tropes)
	}
	if len(c.Tropes) != len(AllTropes) {
		t.Fatalf("expected a flag per trope, got %d", len(c.Tropes))
	}
}

func TestParseMissingTropeColumnIsFalse(t *testing.T) {
	input := "school,conference,bpm,sec_duration,fight\nSchool A,ACC,100,30,Yes\n"
	ds, err := Parse(context.Background(), strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	row := ds.Rows[0]
	if !row.Has(TropeFight) {
		t.Fatalf("expected fight present")
	}
	for _, tr := range AllTropes[1:] {
		if row.Has(tr) {
			t.Fatalf("expected %s absent", tr)
		}
	}
}

func TestParseFlagsInvalidNumbers(t *testing.T) {
	ds, err := Parse(context.Background(), strings.NewReader(sampleCSV), Options{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(ds.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %+v", len(ds.Issues), ds.Issues)
	}
	issue := ds.Issues[0]
	if issue.Field != "sec_duration" || issue.School != "School B" || issue.Line != 4 {
		t.Fatalf("unexpected issue: %+v", issue)
	}
	if !math.IsNaN(ds.Rows[1].SecDuration) {
		t.Fatalf("expected NaN duration, got %v", ds.Rows[1].SecDuration)
	}
	if ds.Rows[1].BPM != 90 {
		t.Fatalf("expected bpm 90, got %v", ds.Rows[1].BPM)
	}
}

func TestParseStrictNumbersFails(t *testing.T) {
	_, err := Parse(context.Background(), strings.NewReader(sampleCSV), Options{StrictNumbers: true})
	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if !strings.Contains(err.Error(), "School B") {
		t.Fatalf("expected issue detail in error, got %v", err)
	}
}

func TestParseMissingSchoolColumn(t *testing.T) {
	_, err := Parse(context.Background(), strings.NewReader("name,bpm\nx,1\n"), Options{})
	if !errors.Is(err, ErrMissingSchoolColumn) {
		t.Fatalf("expected ErrMissingSchoolColumn, got %v", err)
	}
	_, err = Parse(context.Background(), strings.NewReader(""), Options{})
	if !errors.Is(err, ErrMissingSchoolColumn) {
		t.Fatalf("expected ErrMissingSchoolColumn for empty input, got %v", err)
	}
}

func TestParseHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, strings.NewReader(sampleCSV), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestConferenceOrUnknown(t *testing.T) {
	if got := (Row{}).ConferenceOrUnknown(); got != UnknownConference {
		t.Fatalf("expected %q, got %q", UnknownConference, got)
	}
	if got := (Row{Conference: "SEC"}).ConferenceOrUnknown(); got != "SEC" {
		t.Fatalf("expected SEC, got %q", got)
	}
	if got := (Row{Conference: " "}).ConferenceOrUnknown(); got != " " {
		t.Fatalf("whitespace conference should be kept, got %q", got)
	}
}

func TestParseComparesTropesAndConferenceUntrimmed(t *testing.T) {
	input := "school,conference,bpm,sec_duration,fight,victory\n" +
		"School A, ,100, 30, Yes,Yes\n"
	ds, err := Parse(context.Background(), strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	row := ds.Rows[0]
	if row.Has(TropeFight) {
		t.Fatalf("padded \" Yes\" must not count as present")
	}
	if !row.Has(TropeVictory) {
		t.Fatalf("expected victory present")
	}
	if row.ConferenceOrUnknown() != " " {
		t.Fatalf("expected untrimmed conference, got %q", row.ConferenceOrUnknown())
	}
	if row.SecDuration != 30 || len(ds.Issues) != 0 {
		t.Fatalf("numeric cells are trimmed before parsing: %v %v", row.SecDuration, ds.Issues)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.csv")
	if err := os.WriteFile(path, []byte("\ufeff"+sampleCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	ds, err := Load(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(ds.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(ds.Rows))
	}

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}
