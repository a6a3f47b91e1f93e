// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"time"

	"github.com/katalvlaran/heatlab/sim"
)

// Msg is the envelope for every message in both directions.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Request types.
const (
	TypeConfig = "config"
	TypeStart  = "start"
	TypeStop   = "stop"
)

// Reply types.
const (
	TypeConfigSet = "configSet"
	TypeFrame     = "frame"
	TypeFinished  = "finished"
	TypeStopped   = "stopped"
	TypeError     = "error"
)

// FrameData is the content of a "frame" reply.
type FrameData struct {
	Step      int         `json:"step"`
	Total     float64     `json:"total"`
	Peak      float64     `json:"peak"`
	Regions   int         `json:"regions"`
	ElapsedMs int64       `json:"elapsed_ms"`
	Rows      [][]float64 `json:"rows"`
}

// FinishedData is the content of a "finished" reply.
type FinishedData struct {
	Steps     int     `json:"steps"`
	Frames    int     `json:"frames"`
	Total     float64 `json:"total"`
	Peak      float64 `json:"peak"`
	ElapsedMs int64   `json:"elapsed_ms"`
}

func newFrameData(f sim.Frame) FrameData {
	return FrameData{
		Step:      f.Step,
		Total:     f.Total,
		Peak:      f.Peak,
		Regions:   f.Regions,
		ElapsedMs: f.Elapsed.Milliseconds(),
		Rows:      f.Grid.Rows(),
	}
}

func newFinishedData(r sim.Result) FinishedData {
	return FinishedData{
		Steps:     r.Steps,
		Frames:    r.Frames,
		Total:     r.Total,
		Peak:      r.Peak,
		ElapsedMs: r.Elapsed.Round(time.Millisecond).Milliseconds(),
	}
}

// encode wraps v as a reply of type typ.
func encode(typ string, v any) (Msg, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Msg{}, err
	}

	return Msg{Type: typ, Content: string(b)}, nil
}
