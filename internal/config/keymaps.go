package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Widgets
	AddWidget    string `yaml:"add_widget"`
	RemoveWidget string `yaml:"remove_widget"`
	ViewWidget   string `yaml:"view_widget"`

	// Manage panel
	ManageWidgets string `yaml:"manage_widgets"`
	ToggleWidget  string `yaml:"toggle_widget"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Search
	Search string `yaml:"search"`

	// Navigation
	PrevCategory        string `yaml:"prev_category"`
	NextCategory        string `yaml:"next_category"`
	PrevWidget          string `yaml:"prev_widget"`
	NextWidget          string `yaml:"next_widget"`
	ScrollViewportLeft  string `yaml:"scroll_viewport_left"`
	ScrollViewportRight string `yaml:"scroll_viewport_right"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Widgets
		AddWidget:    "a",
		RemoveWidget: "x",
		ViewWidget:   "enter",

		// Manage panel
		ManageWidgets: "m",
		ToggleWidget:  "space",

		// Forms
		SaveForm: "ctrl+s",

		// Search
		Search: "/",

		// Navigation
		PrevCategory:        "h",
		NextCategory:        "l",
		PrevWidget:          "k",
		NextWidget:          "j",
		ScrollViewportLeft:  "[",
		ScrollViewportRight: "]",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddWidget == "" {
		k.AddWidget = defaults.AddWidget
	}
	if k.RemoveWidget == "" {
		k.RemoveWidget = defaults.RemoveWidget
	}
	if k.ViewWidget == "" {
		k.ViewWidget = defaults.ViewWidget
	}
	if k.ManageWidgets == "" {
		k.ManageWidgets = defaults.ManageWidgets
	}
	if k.ToggleWidget == "" {
		k.ToggleWidget = defaults.ToggleWidget
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.PrevCategory == "" {
		k.PrevCategory = defaults.PrevCategory
	}
	if k.NextCategory == "" {
		k.NextCategory = defaults.NextCategory
	}
	if k.PrevWidget == "" {
		k.PrevWidget = defaults.PrevWidget
	}
	if k.NextWidget == "" {
		k.NextWidget = defaults.NextWidget
	}
	if k.ScrollViewportLeft == "" {
		k.ScrollViewportLeft = defaults.ScrollViewportLeft
	}
	if k.ScrollViewportRight == "" {
		k.ScrollViewportRight = defaults.ScrollViewportRight
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
