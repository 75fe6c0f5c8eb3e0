package repository

import (
	"context"
	"encoding/json"
)

// DrawParams is the input of the external draw-conduction procedure
type DrawParams struct {
	DrawDate      string `json:"draw_date"`
	JackpotAmount int    `json:"jackpot_amount"`
	IsTestDraw    bool   `json:"is_test_draw"`
}

// DrawConductor invokes the external draw-conduction procedure. The draw
// algorithm proper lives there; this side supplies validated parameters only.
type DrawConductor interface {
	// ConductDraw runs the draw and returns its result unmodified
	ConductDraw(ctx context.Context, params DrawParams) (json.RawMessage, error)
}
