package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard    string `yaml:"add_card"`
	EditCard   string `yaml:"edit_card"`
	DeleteCard string `yaml:"delete_card"`

	// Dragging
	Grab       string `yaml:"grab"`
	GrabColumn string `yaml:"grab_column"`
	DropDelete string `yaml:"drop_delete"`
	CancelDrag string `yaml:"cancel_drag"`

	// Columns
	AddColumn    string `yaml:"add_column"`
	RenameColumn string `yaml:"rename_column"`

	// Boards
	NewBoard  string `yaml:"new_board"`
	PrevBoard string `yaml:"prev_board"`
	NextBoard string `yaml:"next_board"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddCard:    "a",
		EditCard:   "e",
		DeleteCard: "d",

		Grab:       "space",
		GrabColumn: "m",
		DropDelete: "x",
		CancelDrag: "esc",

		AddColumn:    "A",
		RenameColumn: "R",

		NewBoard:  "N",
		PrevBoard: "[",
		NextBoard: "]",

		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.AddCard, d.AddCard)
	fill(&k.EditCard, d.EditCard)
	fill(&k.DeleteCard, d.DeleteCard)
	fill(&k.Grab, d.Grab)
	fill(&k.GrabColumn, d.GrabColumn)
	fill(&k.DropDelete, d.DropDelete)
	fill(&k.CancelDrag, d.CancelDrag)
	fill(&k.AddColumn, d.AddColumn)
	fill(&k.RenameColumn, d.RenameColumn)
	fill(&k.NewBoard, d.NewBoard)
	fill(&k.PrevBoard, d.PrevBoard)
	fill(&k.NextBoard, d.NextBoard)
	fill(&k.PrevColumn, d.PrevColumn)
	fill(&k.NextColumn, d.NextColumn)
	fill(&k.PrevCard, d.PrevCard)
	fill(&k.NextCard, d.NextCard)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
