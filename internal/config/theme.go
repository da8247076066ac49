package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Board elements
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	DropTarget     string `yaml:"drop_target"`
	Delete         string `yaml:"delete"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors
	SuccessFg string `yaml:"success_fg"`
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "default",
		Accent:         "#874BFD",
		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		DropTarget:     "#5FD75F",
		Delete:         "#FF0000",
		Title:          "#D75FD7",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		SuccessFg:      "#5FD75F",
		InfoFg:         "#00AFFF",
		WarningFg:      "#FFD700",
		ErrorFg:        "#FF0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		ColumnBorder:   "#808080",
		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		DropTarget:     "#FFFFFF",
		Delete:         "#FFFFFF",
		Title:          "#FFFFFF",
		Subtle:         "#808080",
		Normal:         "#D0D0D0",
		SuccessFg:      "#FFFFFF",
		InfoFg:         "#D0D0D0",
		WarningFg:      "#FFFFFF",
		ErrorFg:        "#FFFFFF",
	}
}

// presetScheme returns a preset color scheme by name
func presetScheme(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := presetScheme(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.MergeMissing(preset)
}

// MergeMissing copies every color of other into fields that are empty
func (c *ColorScheme) MergeMissing(other ColorScheme) {
	for _, p := range c.pairs(&other) {
		if *p[0] == "" {
			*p[0] = *p[1]
		}
	}
}

// MergeFrom overrides fields with the non-empty colors of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for _, p := range c.pairs(&other) {
		if *p[1] != "" {
			*p[0] = *p[1]
		}
	}
}

// pairs lines up each color field of c with the same field of other
func (c *ColorScheme) pairs(other *ColorScheme) [][2]*string {
	return [][2]*string{
		{&c.Accent, &other.Accent},
		{&c.ColumnBorder, &other.ColumnBorder},
		{&c.CardBorder, &other.CardBorder},
		{&c.SelectedBorder, &other.SelectedBorder},
		{&c.DropTarget, &other.DropTarget},
		{&c.Delete, &other.Delete},
		{&c.Title, &other.Title},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.SuccessFg, &other.SuccessFg},
		{&c.InfoFg, &other.InfoFg},
		{&c.WarningFg, &other.WarningFg},
		{&c.ErrorFg, &other.ErrorFg},
	}
}
