package model

// ProgressEpsilon is reported as the progress fraction when nothing is
// favorited, so a progress ring renders empty instead of undefined.
const ProgressEpsilon = 0.001

// Stats holds the dashboard figures. Values are derived, never stored.
type Stats struct {
	TotalItems       int
	FavoritedCount   int
	CompletedCount   int
	ProgressFraction float64
}

// Summarize computes dashboard statistics. Completed ids only count while
// they are also favorites.
func Summarize(totalItems int, favorites, completed map[string]struct{}) Stats {
	stats := Stats{
		TotalItems:     totalItems,
		FavoritedCount: len(favorites),
	}

	for id := range completed {
		if _, ok := favorites[id]; ok {
			stats.CompletedCount++
		}
	}

	if stats.FavoritedCount == 0 {
		stats.ProgressFraction = ProgressEpsilon
	} else {
		stats.ProgressFraction = float64(stats.CompletedCount) / float64(stats.FavoritedCount)
	}
	return stats
}

// CompletedPercent returns the progress as a whole percentage for labels
func (s Stats) CompletedPercent() int {
	if s.FavoritedCount == 0 {
		return 0
	}
	return int(s.ProgressFraction*100 + 0.5)
}
