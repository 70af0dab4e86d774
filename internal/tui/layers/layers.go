// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with ui.Width() and ui.Height() as dimensions.
//
// Returns nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := max((screenWidth-contentWidth)/2, 0)
	y := max((screenHeight-contentHeight)/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CalculateModalDimensions determines the outer size of a modal dialog for
// the given screen and the number of content rows it wants to show.
func CalculateModalDimensions(contentRows int, screenWidth int, screenHeight int) (int, int) {
	width := screenWidth * ModalWidthNumerator / ModalWidthDenominator
	width = min(max(width, ModalMinWidth), ModalMaxWidth)
	width = min(width, max(screenWidth, 1))

	height := ModalChromeHeight + max(contentRows, 0)
	maxHeight := screenHeight * ModalMaxHeightNumerator / ModalMaxHeightDivisor
	height = max(height, ModalMinHeight)
	height = min(height, max(maxHeight, ModalMinHeight))

	return width, height
}
