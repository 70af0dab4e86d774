package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/config/colors"
)

// ErrUnknownPreset is returned when the config names a theme preset that is not built in
var ErrUnknownPreset = errors.New("unknown theme preset")

// PresetNames lists the built-in theme presets
func PresetNames() []string {
	return []string{"default", "monochrome"}
}

// PresetColorScheme returns the built-in color scheme called name.
// An empty name selects the default scheme.
func PresetColorScheme(name string) (colors.ColorScheme, error) {
	switch name {
	case "", "default":
		return *colors.Default(), nil
	case "monochrome":
		return *colors.Monochrome(), nil
	}
	return colors.ColorScheme{}, fmt.Errorf("%w %q (available: %s)",
		ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
}
