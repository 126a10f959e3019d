package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/cocosip/go-segy-amptune/amplify/window"
)

// parsePoint parses "TRACE,MS", e.g. "12,250.5"
func parsePoint(s string) (window.Point, error) {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	if len(parts) != 2 {
		return window.Point{}, fmt.Errorf("point %q: want TRACE,MS", s)
	}
	trace, err := strconv.Atoi(parts[0])
	if err != nil {
		return window.Point{}, fmt.Errorf("point %q: trace: %w", s, err)
	}
	ms, err := strconv.ParseFloat(parts[1], 32)
	if err != nil {
		return window.Point{}, fmt.Errorf("point %q: time: %w", s, err)
	}
	return window.Point{Trace: trace, TimeMs: float32(ms)}, nil
}

// parseSelection parses every --point value. Values may also carry several
// points separated by ';'.
func parseSelection(values []string) (window.Selection, error) {
	raw := lo.FlatMap(values, func(v string, _ int) []string {
		return lo.Compact(strings.Split(v, ";"))
	})
	sel := make(window.Selection, 0, len(raw))
	for _, r := range raw {
		p, err := parsePoint(r)
		if err != nil {
			return nil, err
		}
		sel = append(sel, p)
	}
	return sel, nil
}
