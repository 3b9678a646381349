package site

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/fightsongs/internal/aggregate"
	"github.com/mwiater/fightsongs/internal/charts"
	"github.com/mwiater/fightsongs/internal/dataset"
	"github.com/mwiater/fightsongs/internal/render/htmlchart"
)

func sampleDescriptors(t *testing.T) []charts.Descriptor {
	t.Helper()
	rows := []dataset.Row{
		{School: "Alpha State", Conference: "Big Ten", BPM: 140, SecDuration: 60, Tropes: map[dataset.Trope]bool{dataset.TropeFight: true, dataset.TropeVictory: true}},
		{School: "Beta Tech", Conference: "SEC", BPM: 80, SecDuration: 45, Tropes: map[dataset.Trope]bool{dataset.TropeFight: true}},
	}
	descs, err := charts.Build(rows, aggregate.Build(rows))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return descs
}

func TestWriteProducesLinkedPages(t *testing.T) {
	descs := sampleDescriptors(t)
	dir := filepath.Join(t.TempDir(), "site")

	paths, err := Write(context.Background(), dir, descs, htmlchart.New(0, 0))
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if len(paths) != len(descs)+1 {
		t.Fatalf("expected %d files, got %d: %v", len(descs)+1, len(paths), paths)
	}
	if filepath.Base(paths[0]) != IndexFile {
		t.Fatalf("expected index first, got %s", paths[0])
	}

	first, err := os.ReadFile(filepath.Join(dir, PageName(0, charts.KindScatter)))
	if err != nil {
		t.Fatalf("read first page: %v", err)
	}
	page := string(first)
	if !strings.Contains(page, `href="chart-5-chord.html"`) {
		t.Fatalf("expected previous link to wrap to the chord page")
	}
	if !strings.Contains(page, `href="chart-2-durationByConference.html"`) {
		t.Fatalf("expected next link to the duration page")
	}
	if !strings.Contains(page, "1 / 5") || !strings.Contains(page, "Tempo vs. Duration") {
		t.Fatalf("expected position and title on the first page")
	}

	index, err := os.ReadFile(filepath.Join(dir, IndexFile))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if string(index) != page {
		t.Fatalf("index should show the first chart")
	}

	last, err := os.ReadFile(filepath.Join(dir, PageName(4, charts.KindChord)))
	if err != nil {
		t.Fatalf("read chord page: %v", err)
	}
	if !strings.Contains(string(last), `href="chart-1-scatter.html"`) {
		t.Fatalf("expected next link on the last page to wrap to the first")
	}
	if !strings.Contains(string(last), "&lt;svg") {
		t.Fatalf("expected the chord svg escaped into srcdoc")
	}
}

func TestWriteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Write(ctx, t.TempDir(), sampleDescriptors(t), htmlchart.New(0, 0))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPageName(t *testing.T) {
	if got := PageName(2, charts.KindStacked); got != "chart-3-stacked.html" {
		t.Fatalf("unexpected page name %q", got)
	}
}
