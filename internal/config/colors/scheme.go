package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Root background of the screen
	Background string `yaml:"background"`

	// Semantic colors
	Create string `yaml:"create"` // Green - add widget dialog
	Edit   string `yaml:"edit"`   // Blue - manage panel, help
	Delete string `yaml:"delete"` // Red - validation errors

	// UI element colors
	CategoryBorder   string `yaml:"category_border"`
	WidgetBorder     string `yaml:"widget_border"`
	WidgetBackground string `yaml:"widget_background"`
	SelectedBorder   string `yaml:"selected_border"`
	SelectedBg       string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	for _, f := range c.fields(preset) {
		if *f.dst == "" {
			*f.dst = f.fallback
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other.
// A different preset in other resets the base before merging.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	for _, f := range c.fields(&other) {
		if f.fallback != "" {
			*f.dst = f.fallback
		}
	}
}

type colorField struct {
	dst      *string
	fallback string
}

// fields pairs every color of c with the same color of src
func (c *ColorScheme) fields(src *ColorScheme) []colorField {
	return []colorField{
		{&c.Accent, src.Accent},
		{&c.Background, src.Background},
		{&c.Create, src.Create},
		{&c.Edit, src.Edit},
		{&c.Delete, src.Delete},
		{&c.CategoryBorder, src.CategoryBorder},
		{&c.WidgetBorder, src.WidgetBorder},
		{&c.WidgetBackground, src.WidgetBackground},
		{&c.SelectedBorder, src.SelectedBorder},
		{&c.SelectedBg, src.SelectedBg},
		{&c.Title, src.Title},
		{&c.Subtle, src.Subtle},
		{&c.Normal, src.Normal},
		{&c.InfoFg, src.InfoFg},
		{&c.InfoBg, src.InfoBg},
		{&c.WarningFg, src.WarningFg},
		{&c.WarningBg, src.WarningBg},
		{&c.ErrorFg, src.ErrorFg},
		{&c.ErrorBg, src.ErrorBg},
		{&c.StatusBarBg, src.StatusBarBg},
		{&c.StatusBarText, src.StatusBarText},
	}
}
