package planetsim

import (
	"encoding/csv"
	"os"
	"strconv"
	"testing"
	"time"
)

func TestStreamStatesCSV(t *testing.T) {
	outDir := t.TempDir()
	cfgLoaded = true
	config = _simconfig{pxPerAU: 120, timeStep: Day, outputDir: outDir}
	defer func() { cfgLoaded = false }()

	system := NewInnerSolarSystem()
	conf := ExportConfig{Filename: "reftest", AsCSV: true, Timestamp: false}
	system.PropagateFor(10*24*time.Hour, Day, conf)

	f, err := os.Open(outDir + "/orbits-reftest.csv")
	if err != nil {
		t.Fatalf("export file not created: %s", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %s", err)
	}
	// Header plus the initial state plus one row per step.
	if len(records) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(records))
	}
	// time, jd, then x, y, vx, vy for each of the five bodies.
	if len(records[0]) != 2+4*5 {
		t.Fatalf("expected 22 columns, got %d", len(records[0]))
	}
	if records[0][2] != "Sun.x" || records[0][6] != "Mercury.x" {
		t.Fatalf("invalid header: %+v", records[0])
	}
	// The first data row carries the initial conditions.
	if earthX, err := strconv.ParseFloat(records[1][14], 64); err != nil || earthX != 1*AU {
		t.Fatalf("invalid initial Earth x: %s (%v)", records[1][14], err)
	}
	// Julian days advance by exactly one per row.
	jdFirst, _ := strconv.ParseFloat(records[1][1], 64)
	jdLast, _ := strconv.ParseFloat(records[11][1], 64)
	if jdLast-jdFirst != 10 {
		t.Fatalf("expected 10 Julian days between first and last row, got %f", jdLast-jdFirst)
	}
}

func TestExportConfigUseless(t *testing.T) {
	if !(ExportConfig{Filename: "x"}).IsUseless() {
		t.Fatal("config without CSV output must be useless")
	}
	if (ExportConfig{Filename: "x", AsCSV: true}).IsUseless() {
		t.Fatal("CSV config must not be useless")
	}
	// A useless config must still drain the channel without writing anything.
	ch := make(chan SimState, 2)
	ch <- SimState{DT: J2000}
	close(ch)
	StreamStates(ExportConfig{}, ch)
}
