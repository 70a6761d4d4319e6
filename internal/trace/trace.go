// Package trace writes the frames of a finished run for external tools.
package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/ballpit/internal/world"
)

type Meta struct {
	Environment string  `json:"environment"`
	Material    string  `json:"material"`
	Dt          float64 `json:"dt"`
	Duration    float64 `json:"duration"`
	Seed        int64   `json:"seed"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

type ExportData struct {
	Meta
	Steps   int                `json:"steps"`
	Times   []float64          `json:"times"`
	Frames  [][]BodyRecord     `json:"frames"`
	Metrics map[string]float64 `json:"metrics"`
	Errors  []string           `json:"errors,omitempty"`
}

type BodyRecord struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Radius float64 `json:"radius"`
}

var csvHeader = []string{"time", "body", "x", "y", "vx", "vy", "radius"}

// WriteCSV writes one row per body per frame.
func WriteCSV(w io.Writer, result *world.Result) error {
	if len(result.Frames) != len(result.Times) {
		return fmt.Errorf("trace: %d frames but %d times", len(result.Frames), len(result.Times))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i, frame := range result.Frames {
		ts := formatFloat(result.Times[i])
		for j, b := range frame {
			row := []string{
				ts,
				strconv.Itoa(j),
				formatFloat(b.X),
				formatFloat(b.Y),
				formatFloat(b.VX),
				formatFloat(b.VY),
				formatFloat(b.Radius),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, meta Meta, result *world.Result) error {
	data := ExportData{
		Meta:    meta,
		Steps:   result.StepsTaken,
		Times:   result.Times,
		Frames:  make([][]BodyRecord, len(result.Frames)),
		Metrics: result.Metrics,
	}

	for i, frame := range result.Frames {
		recs := make([]BodyRecord, len(frame))
		for j, b := range frame {
			recs[j] = BodyRecord{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, Radius: b.Radius}
		}
		data.Frames[i] = recs
	}
	for _, err := range result.Errors {
		data.Errors = append(data.Errors, err.Error())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
