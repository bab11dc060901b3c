package leaderboard

import (
	"fmt"
	"io"
	"slices"
	"sort"

	"lolladder/pkg/models/profile"
	queuevalues "lolladder/pkg/riotvalues/queue"
	tiervalues "lolladder/pkg/riotvalues/tier"
)

// CodeFence frames every board so it renders as a code block when pasted in a chat.
const CodeFence = "```"

// Key is the value a leaderboard is ordered by.
type Key func(p *profile.Profile) float64

// BySolo orders by the solo queue ladder position.
func BySolo(p *profile.Profile) float64 {
	return tiervalues.LadderPosition(p.Rank(queuevalues.Solo))
}

// ByFlex orders by the flex queue ladder position.
func ByFlex(p *profile.Profile) float64 {
	return tiervalues.LadderPosition(p.Rank(queuevalues.Flex))
}

// ByLevel orders by the summoner level.
func ByLevel(p *profile.Profile) float64 {
	return float64(p.Level())
}

// Rank returns a new slice ordered by key, highest first.
// It sorts ascending and then reverses, so tied profiles end up in reverse roster order.
func Rank(profiles []*profile.Profile, key Key) []*profile.Profile {
	sorted := slices.Clone(profiles)

	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) < key(sorted[j])
	})
	slices.Reverse(sorted)

	return sorted
}

// Board is a titled leaderboard with its ordering and line format.
type Board struct {
	Title string
	Key   Key
	Line  func(p *profile.Profile) string
}

// SoloBoard is the solo queue leaderboard.
func SoloBoard() Board {
	return Board{
		Title: "SOLOQUEUE",
		Key:   BySolo,
		Line: func(p *profile.Profile) string {
			return p.DisplayStats(queuevalues.Solo)
		},
	}
}

// FlexBoard is the flex queue leaderboard.
func FlexBoard() Board {
	return Board{
		Title: "FLEXQUEUE",
		Key:   ByFlex,
		Line: func(p *profile.Profile) string {
			return p.DisplayStats(queuevalues.Flex)
		},
	}
}

// PlaytimeBoard is the playtime leaderboard, hours averaged over weeks.
func PlaytimeBoard(weeks float64) Board {
	return Board{
		Title: "Playtime (since Dec. 2017)",
		Key:   ByLevel,
		Line: func(p *profile.Profile) string {
			return p.DisplayLevel(weeks)
		},
	}
}

// DefaultBoards returns the solo, flex and playtime boards in that order.
func DefaultBoards(weeks float64) []Board {
	return []Board{SoloBoard(), FlexBoard(), PlaytimeBoard(weeks)}
}

// Lines ranks the profiles and formats one line each.
func (b Board) Lines(profiles []*profile.Profile) []string {
	ranked := Rank(profiles, b.Key)

	lines := make([]string, 0, len(ranked))
	for _, p := range ranked {
		lines = append(lines, b.Line(p))
	}
	return lines
}

// Render writes every board inside its own code fence.
func Render(w io.Writer, profiles []*profile.Profile, boards ...Board) error {
	for _, board := range boards {
		if _, err := fmt.Fprintf(w, "%s\n<<< LEADERBOARDS: %s >>>\n", CodeFence, board.Title); err != nil {
			return err
		}

		for _, line := range board.Lines(profiles) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%s\n\n", CodeFence); err != nil {
			return err
		}
	}
	return nil
}
