package club

func ptr[T any](v T) *T { return &v }

// SamplePlayers is the built-in roster shown when the store is empty or
// unreachable. The page should never render blank.
func SamplePlayers() []Player {
	return []Player{
		{
			Name:         "Aarav Patel",
			Role:         "All-rounder",
			BattingStyle: ptr("RHB"),
			BowlingStyle: ptr("RMF"),
			PhotoURL:     ptr("https://images.unsplash.com/photo-1521417531739-9ee39be9fb0a?q=80&w=600&auto=format&fit=crop"),
			Matches:      42,
			Runs:         1250,
			Wickets:      58,
			Catches:      19,
		},
		{
			Name:         "Rohan Mehta",
			Role:         "Batter",
			BattingStyle: ptr("RHB"),
			PhotoURL:     ptr("https://images.unsplash.com/photo-1519681393784-d120267933ba?q=80&w=600&auto=format&fit=crop"),
			Matches:      38,
			Runs:         980,
			Wickets:      4,
			Catches:      12,
		},
		{
			Name:         "Vikram Shah",
			Role:         "Bowler",
			BattingStyle: ptr("RHB"),
			BowlingStyle: ptr("LS"),
			PhotoURL:     ptr("https://images.unsplash.com/photo-1549057446-9f5c6ac91a04?q=80&w=600&auto=format&fit=crop"),
			Matches:      45,
			Runs:         320,
			Wickets:      72,
			Catches:      22,
		},
	}
}

// SampleFounders is the built-in founders list shown when the store is empty.
func SampleFounders() []Founder {
	return []Founder{
		{
			Name:     "S. Nair",
			Role:     ptr("Founder"),
			Bio:      ptr("Brought the community together to form Sankalp CC."),
			PhotoURL: ptr("https://images.unsplash.com/photo-1539683255143-73a6b838b106?q=80&w=600&auto=format&fit=crop"),
			Year:     ptr(2011),
		},
		{
			Name:     "A. Desai",
			Role:     ptr("Co-Founder"),
			Bio:      ptr("Early captain and coach, grew the junior program."),
			PhotoURL: ptr("https://images.unsplash.com/photo-1544717302-de2939b7ef71?q=80&w=600&auto=format&fit=crop"),
			Year:     ptr(2011),
		},
	}
}
