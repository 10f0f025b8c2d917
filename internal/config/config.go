// internal/config/config.go
package config

import "image/color"

const (
	WindowSize      = 800 // сторона квадратного поля в пикселях
	GridDimension   = 50
	ButtonBarHeight = 100
	StepsPerFrame   = 1
	BarrierDensity  = 0.3

	GridLineWidth = 1.0

	ButtonWidth   = 180
	ButtonHeight  = 44
	ButtonSpacing = 40

	TextOffsetY = 4

	// Терминальный фронтенд: ячейка рисуется двумя символами.
	TermCellWidth = 2

	// PNG-снимок для CLI.
	SnapshotCellSize = 16
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}       // black
	EmptyColor      = color.RGBA{0, 0, 0, 255}       // black
	BarrierColor    = color.RGBA{255, 255, 255, 255} // white
	StartColor      = color.RGBA{255, 255, 0, 255}   // yellow
	GoalColor       = color.RGBA{255, 0, 0, 255}     // red
	OpenColor       = color.RGBA{70, 130, 180, 255}  // steel blue
	ClosedColor     = color.RGBA{0, 0, 205, 255}     // medium blue
	PathColor       = color.RGBA{255, 165, 0, 255}   // orange
	GridLineColor   = color.RGBA{128, 128, 128, 255} // gray

	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 240}
	ButtonTextColor  = color.RGBA{240, 240, 240, 255}
	StatusTextColor  = color.RGBA{240, 240, 240, 255}
)
