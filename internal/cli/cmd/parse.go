package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

// parseScreen parses "X,Y,W,H" or "WxH" into a rectangle with positive size.
func parseScreen(s string) (entity.Rect, error) {
	s = strings.TrimSpace(s)

	if w, h, ok := strings.Cut(s, "x"); ok && !strings.Contains(s, ",") {
		width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return entity.Rect{}, fmt.Errorf("invalid screen width %q: %w", w, err)
		}
		height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return entity.Rect{}, fmt.Errorf("invalid screen height %q: %w", h, err)
		}
		return validScreen(entity.Rect{Width: width, Height: height})
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return entity.Rect{}, fmt.Errorf("invalid screen %q: want X,Y,W,H or WxH", s)
	}
	values := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return entity.Rect{}, fmt.Errorf("invalid screen %q: %w", s, err)
		}
		values[i] = v
	}
	return validScreen(entity.Rect{X: values[0], Y: values[1], Width: values[2], Height: values[3]})
}

func validScreen(r entity.Rect) (entity.Rect, error) {
	for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return entity.Rect{}, fmt.Errorf("screen must be finite, got %g,%g,%g,%g", r.X, r.Y, r.Width, r.Height)
		}
	}
	if r.Width <= 0 || r.Height <= 0 {
		return entity.Rect{}, fmt.Errorf("screen must have a positive size, got %gx%g", r.Width, r.Height)
	}
	return r, nil
}

// parseWindows parses a comma-separated id list. Blank entries are dropped.
func parseWindows(s string) []entity.Window {
	var out []entity.Window
	for _, part := range strings.Split(s, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		out = append(out, entity.Window{ID: entity.WindowID(id)})
	}
	return out
}
