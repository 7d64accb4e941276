// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"testing"

	"github.com/gogpu/starrating/geom"
)

func defaultConfig() Config {
	return Config{StarCount: 5, StarSize: 16, Spacing: 5, BorderWidth: 1}
}

func TestPreferredSize(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want geom.Size
	}{
		{"defaults", defaultConfig(), geom.Size{Width: 105, Height: 17}},
		{"no border", Config{StarCount: 3, StarSize: 10, Spacing: 2}, geom.Size{Width: 34, Height: 10}},
		{"single star", Config{StarCount: 1, StarSize: 20, Spacing: 9, BorderWidth: 2}, geom.Size{Width: 22, Height: 22}},
		{"half border rounds up", Config{StarCount: 1, StarSize: 10, BorderWidth: 0.5}, geom.Size{Width: 11, Height: 11}},
		{"fractional border", Config{StarCount: 4, StarSize: 10, Spacing: 1, BorderWidth: 0.3}, geom.Size{Width: 44, Height: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreferredSize(tt.cfg); got != tt.want {
				t.Errorf("PreferredSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPreferredSizeRoundTrip(t *testing.T) {
	configs := []Config{
		defaultConfig(),
		{StarCount: 1, StarSize: 1},
		{StarCount: 10, StarSize: 24, Spacing: 0, BorderWidth: 3},
		{StarCount: 7, StarSize: 13, Spacing: 11, BorderWidth: 5},
	}
	for _, cfg := range configs {
		size := PreferredSize(cfg)
		for i, r := range StarRects(cfg, size) {
			if r.Width != float64(cfg.StarSize) {
				t.Errorf("%+v: star %d width = %v, want %d", cfg, i, r.Width, cfg.StarSize)
			}
			if r.Height != float64(cfg.StarSize) {
				t.Errorf("%+v: star %d height = %v, want %d", cfg, i, r.Height, cfg.StarSize)
			}
		}
	}
}

func TestStarRect(t *testing.T) {
	cfg := defaultConfig()
	size := geom.Size{Width: 105, Height: 17}

	tests := []struct {
		i    int
		want geom.Rect
	}{
		{0, geom.Rect{X: 0.5, Y: 0.5, Width: 16, Height: 16}},
		{1, geom.Rect{X: 22.5, Y: 0.5, Width: 16, Height: 16}},
		{4, geom.Rect{X: 88.5, Y: 0.5, Width: 16, Height: 16}},
	}
	for _, tt := range tests {
		if got := StarRect(tt.i, cfg, size); got != tt.want {
			t.Errorf("StarRect(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestStarRectStretched(t *testing.T) {
	cfg := defaultConfig()
	size := geom.Size{Width: 205, Height: 41}

	r := StarRect(2, cfg, size)
	// (205 - 20 - 5) / 5
	if r.Width != 36 {
		t.Errorf("stretched width = %v, want 36", r.Width)
	}
	if r.Height != 40 {
		t.Errorf("stretched height = %v, want 40", r.Height)
	}
	// The advance keeps using the configured star size.
	if r.X != 0.5+2*22 {
		t.Errorf("stretched x = %v, want %v", r.X, 0.5+2*22)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{"valid", defaultConfig(), defaultConfig()},
		{"zero count", Config{StarCount: 0, StarSize: 16}, Config{StarCount: 1, StarSize: 16}},
		{"negative size", Config{StarCount: 5, StarSize: -3}, Config{StarCount: 5, StarSize: 1}},
		{"negative spacing", Config{StarCount: 5, StarSize: 16, Spacing: -1}, Config{StarCount: 5, StarSize: 16}},
		{"wide border", Config{StarCount: 5, StarSize: 16, BorderWidth: 9}, Config{StarCount: 5, StarSize: 16, BorderWidth: 5}},
		{"negative border", Config{StarCount: 5, StarSize: 16, BorderWidth: -0.1}, Config{StarCount: 5, StarSize: 16, BorderWidth: 1}},
		{"half step kept", Config{StarCount: 5, StarSize: 16, HalfStep: true}, Config{StarCount: 5, StarSize: 16, HalfStep: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClampBorderWidth(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-5, 1},
		{-0.01, 1},
		{0, 0},
		{2.5, 2.5},
		{5, 5},
		{5.01, 5},
		{100, 5},
	}
	for _, tt := range tests {
		if got := ClampBorderWidth(tt.in); got != tt.want {
			t.Errorf("ClampBorderWidth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
