package models

// DefaultBoard returns the seeded board used on first run and as the
// template for new boards. Every call returns an independent copy.
func DefaultBoard() Board {
	return Board{
		ID:    "default-board",
		Name:  "kanbanned.com",
		Emoji: "🦀",
		Tags: []Tag{
			{ID: "tag-bug", Name: "bug", Color: "#EF4444"},
			{ID: "tag-feature", Name: "feature", Color: "#3B82F6"},
		},
		Columns: []Column{
			{
				ID:   "col-todo",
				Name: "To Do",
				Cards: []Card{
					{
						ID:          "card-1",
						Title:       "Fix bug that only happens on Fridays",
						Description: "It works on my machine, I swear",
						Priority:    PriorityHigh,
						TagID:       "tag-bug",
					},
					{
						ID:          "card-2",
						Title:       "Delete node_modules and pray",
						Description: "The ancient ritual of JavaScript developers",
						Priority:    PriorityMedium,
					},
					{
						ID:          "card-3",
						Title:       "Read the documentation",
						Description: "Just kidding, Stack Overflow it is",
						Priority:    PriorityLow,
						TagID:       "tag-feature",
					},
				},
			},
			{
				ID:   "col-doing",
				Name: "Doing",
				Cards: []Card{
					{
						ID:          "card-4",
						Title:       "Mass procrastinating",
						Description: "Reorganizing my desktop icons for maximum productivity",
						Priority:    PriorityHigh,
					},
					{
						ID:          "card-5",
						Title:       "Googling how to exit Vim",
						Description: "Day 47: Still trapped. Send help.",
						Priority:    PriorityHigh,
						TagID:       "tag-bug",
					},
				},
			},
			{
				ID:   "col-review",
				Name: "In Review",
				Cards: []Card{
					{
						ID:          "card-6",
						Title:       "PR with 2000 lines changed",
						Description: "LGTM, I definitely read all of it",
						Priority:    PriorityMedium,
						TagID:       "tag-feature",
					},
				},
			},
			{
				ID:   "col-done",
				Name: "Done",
				Cards: []Card{
					{
						ID:          "card-7",
						Title:       "Added console.log for debugging",
						Description: "Forgot to remove them. They're in production now.",
						Priority:    PriorityLow,
					},
					{
						ID:          "card-8",
						Title:       "Mass touched grass",
						Description: "Outside has great graphics but the gameplay is boring",
						Priority:    PriorityLow,
					},
				},
			},
		},
	}
}

// DefaultAppData returns the built-in data set: one seeded board
func DefaultAppData() AppData {
	return AppData{
		Version: CurrentVersion,
		Boards:  []Board{DefaultBoard()},
	}
}
