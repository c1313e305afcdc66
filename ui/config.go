package ui

import (
	"classic-snake/game/types"
)

// WindowConfig describes the top-level window.
type WindowConfig struct {
	Width     int32
	Height    int32
	Title     string
	AssetDir  string
	TargetFPS int32
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     types.CanvasWidth,
		Height:    types.CanvasHeight,
		Title:     "Snake",
		AssetDir:  "./assets",
		TargetFPS: 60,
	}
}
