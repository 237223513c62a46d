package dex

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidCatch is wrapped by every CatchProbability input error.
var ErrInvalidCatch = errors.New("invalid catch input")

var ballMultipliers = map[string]float64{
	"poke":   1,
	"great":  1.5,
	"ultra":  2,
	"master": 255,
	"quick":  5,   // first turn
	"net":    3.5, // water or bug targets
}

var statusMultipliers = map[string]float64{
	"none": 1,
	"par":  1.5,
	"psn":  1.5,
	"brn":  1.5,
	"slp":  2.5,
	"frz":  2.5,
}

// Catch odds ratings.
const (
	RatingGuaranteed = "guaranteed"
	RatingHigh       = "high"
	RatingMedium     = "medium"
	RatingLow        = "low"
)

// BallCodes lists the accepted ball codes.
func BallCodes() []string { return []string{"poke", "great", "ultra", "master", "quick", "net"} }

// StatusCodes lists the accepted status codes.
func StatusCodes() []string { return []string{"none", "par", "psn", "brn", "slp", "frz"} }

// CatchInput describes one throw.
type CatchInput struct {
	MaxHP       int    `json:"max_hp"`
	CurrentHP   int    `json:"current_hp"`
	CaptureRate int    `json:"capture_rate"`
	Ball        string `json:"ball"`   // empty means poke
	Status      string `json:"status"` // empty means none
}

// CatchResult is the simplified single-shake estimate of a throw.
type CatchResult struct {
	ModifiedRate float64 `json:"modified_rate"` // "a", capped at 255
	Percent      float64 `json:"percent"`
	Guaranteed   bool    `json:"guaranteed"`
	Rating       string  `json:"rating"`
}

// CatchProbability evaluates
//
//	a = min(255, ((3M - 2H) * A * B) / (3M) * S)
//
// and reports a/255 as a percentage.
func CatchProbability(in CatchInput) (CatchResult, error) {
	ball := strings.ToLower(strings.TrimSpace(in.Ball))
	if ball == "" {
		ball = "poke"
	}
	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status == "" {
		status = "none"
	}
	b, ok := ballMultipliers[ball]
	if !ok {
		return CatchResult{}, fmt.Errorf("%w: unknown ball %q", ErrInvalidCatch, in.Ball)
	}
	s, ok := statusMultipliers[status]
	if !ok {
		return CatchResult{}, fmt.Errorf("%w: unknown status %q", ErrInvalidCatch, in.Status)
	}
	if in.MaxHP < 1 {
		return CatchResult{}, fmt.Errorf("%w: max hp must be at least 1, got %d", ErrInvalidCatch, in.MaxHP)
	}
	if in.CurrentHP < 1 || in.CurrentHP > in.MaxHP {
		return CatchResult{}, fmt.Errorf("%w: current hp must be between 1 and %d, got %d", ErrInvalidCatch, in.MaxHP, in.CurrentHP)
	}
	if in.CaptureRate < 1 || in.CaptureRate > 255 {
		return CatchResult{}, fmt.Errorf("%w: capture rate must be between 1 and 255, got %d", ErrInvalidCatch, in.CaptureRate)
	}

	m := float64(in.MaxHP)
	h := float64(in.CurrentHP)
	a := ((3*m - 2*h) * float64(in.CaptureRate) * b) / (3 * m) * s
	a = math.Min(255, a)

	res := CatchResult{ModifiedRate: a}
	if a >= 255 {
		res.Percent = 100
		res.Guaranteed = true
		res.Rating = RatingGuaranteed
		return res, nil
	}
	res.Percent = a / 255 * 100
	switch {
	case res.Percent >= 50:
		res.Rating = RatingHigh
	case res.Percent >= 20:
		res.Rating = RatingMedium
	default:
		res.Rating = RatingLow
	}
	return res, nil
}

// CatchReport is a catch estimate for a named pokemon.
type CatchReport struct {
	Name        string      `json:"name"`
	CaptureRate int         `json:"capture_rate"`
	Result      CatchResult `json:"result"`
}

// Catch looks up the species capture rate of a pokemon and evaluates the
// throw. in.CaptureRate is ignored.
func (d *Dex) Catch(ctx context.Context, nameOrID string, in CatchInput) (*CatchReport, error) {
	mon, err := d.api.Pokemon().Get(ctx, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("catch %s: %w", nameOrID, err)
	}
	sp, err := d.api.Species().Get(ctx, mon.Species.Name)
	if err != nil {
		return nil, fmt.Errorf("catch %s: species: %w", nameOrID, err)
	}
	in.CaptureRate = sp.CaptureRate
	res, err := CatchProbability(in)
	if err != nil {
		return nil, err
	}
	return &CatchReport{Name: mon.Name, CaptureRate: sp.CaptureRate, Result: res}, nil
}
