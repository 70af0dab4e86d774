package layers

const (
	// Modal widths as a fraction of the screen: numerator / denominator
	ModalWidthNumerator   = 3
	ModalWidthDenominator = 5

	ModalMinWidth = 40
	ModalMaxWidth = 90

	ModalMinHeight = 10
	// Modals never take more than 3/4 of the screen height
	ModalMaxHeightNumerator = 3
	ModalMaxHeightDivisor   = 4

	// ModalChromeHeight is title, blank line, footer, padding and border
	ModalChromeHeight = 8
	// ModalChromeWidth is horizontal padding and border
	ModalChromeWidth = 6

	HelpWidth = 56
)
