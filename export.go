package planetsim

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// BodyState is the exported state of one body at one step.
type BodyState struct {
	Name string
	R, V []float64
}

// SimState is the exported state of the whole system at one step.
type SimState struct {
	DT     time.Time
	Bodies []BodyState
}

// ExportConfig configures the exporting of the propagation.
type ExportConfig struct {
	Filename  string
	AsCSV     bool
	Timestamp bool
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV
}

// StreamStates streams the output of the channel to a CSV file in the
// configured output directory, one row per state with the Julian day and each
// body's position and velocity. Returns when the channel is closed.
func StreamStates(conf ExportConfig, stateChan <-chan (SimState)) {
	if !conf.AsCSV {
		for range stateChan {
			// Drain: nothing to write.
		}
		return
	}
	var f *os.File
	var w *csv.Writer
	for state := range stateChan {
		if w == nil {
			f = createCSVFile(conf)
			w = csv.NewWriter(f)
			hdr := []string{"time", "jd"}
			for _, b := range state.Bodies {
				hdr = append(hdr, b.Name+".x", b.Name+".y", b.Name+".vx", b.Name+".vy")
			}
			if err := w.Write(hdr); err != nil {
				panic(err)
			}
		}
		rec := []string{state.DT.UTC().Format("2006-01-02 15:04:05"), strconv.FormatFloat(julian.TimeToJD(state.DT), 'f', 5, 64)}
		for _, b := range state.Bodies {
			rec = append(rec, ftoa(b.R[0]), ftoa(b.R[1]), ftoa(b.V[0]), ftoa(b.V[1]))
		}
		if err := w.Write(rec); err != nil {
			panic(err)
		}
	}
	if w != nil {
		w.Flush()
		if err := w.Error(); err != nil {
			panic(err)
		}
		f.Close()
	}
}

func createCSVFile(conf ExportConfig) *os.File {
	name := conf.Filename
	if conf.Timestamp {
		name += "-" + time.Now().Format("2006-01-02-15.04.05")
	}
	f, err := os.Create(fmt.Sprintf("%s/orbits-%s.csv", simConfig().outputDir, name))
	if err != nil {
		panic(err)
	}
	return f
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
