package tiervalues

import (
	"fmt"
	"strings"

	queuevalues "lolladder/pkg/riotvalues/queue"
)

// Tier is a named competitive band, ordered by strength.
// The zero value is Unranked.
type Tier int

const (
	Unranked Tier = iota
	Iron
	Bronze
	Silver
	Gold
	Platinum
	Emerald
	Diamond
	Master
	Grandmaster
	Challenger
)

// Division is the sub rank inside a tier, I being the strongest.
// The zero value is an absent division.
type Division int

const (
	NoDivision Division = iota
	DivisionI
	DivisionII
	DivisionIII
	DivisionIV
	// DivisionOther is any label the API sends that isn't I..IV.
	DivisionOther
)

// Pre-sorted slices for better lookup.
var tierNames = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER"}
var divisionNames = []string{"I", "II", "III", "IV"}

// Ordinal per tier, -1 for unranked.
var tierOrdinals = map[Tier]int{
	Unranked:    -1,
	Iron:        0,
	Bronze:      1,
	Silver:      2,
	Gold:        3,
	Platinum:    4,
	Emerald:     5,
	Diamond:     6,
	Master:      7,
	Grandmaster: 8,
	Challenger:  9,
}

// Ordinal per division, -1 when absent and 5 for unrecognized labels.
var divisionOrdinals = map[Division]int{
	NoDivision:    -1,
	DivisionI:     1,
	DivisionII:    2,
	DivisionIII:   3,
	DivisionIV:    4,
	DivisionOther: 5,
}

// ParseTier converts a Riot tier name, case insensitive.
// Empty or unknown names are Unranked.
func ParseTier(name string) Tier {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, tierName := range tierNames {
		if tierName == name {
			return Tier(i + 1)
		}
	}
	return Unranked
}

// ParseDivision converts a Riot rank label (I, II, III, IV).
// Empty labels are NoDivision, any other label is DivisionOther.
func ParseDivision(label string) Division {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		return NoDivision
	}
	for i, divisionName := range divisionNames {
		if divisionName == label {
			return Division(i + 1)
		}
	}
	return DivisionOther
}

// Ordinal returns -1 for Unranked, then 0 (Iron) up to 9 (Challenger).
func (t Tier) Ordinal() int {
	ordinal, exists := tierOrdinals[t]
	if !exists {
		return -1
	}
	return ordinal
}

// IsApex reports whether the tier has no divisions.
func (t Tier) IsApex() bool {
	return t == Master || t == Grandmaster || t == Challenger
}

func (t Tier) String() string {
	if t < Iron || t > Challenger {
		return "UNRANKED"
	}
	return tierNames[t-1]
}

// DisplayName is the capitalized tier name, "Unranked" when absent.
func (t Tier) DisplayName() string {
	if t < Iron || t > Challenger {
		return "Unranked"
	}
	name := tierNames[t-1]
	return name[:1] + strings.ToLower(name[1:])
}

// Ordinal returns -1 when absent, 1 (I) to 4 (IV), and 5 for anything else.
func (d Division) Ordinal() int {
	ordinal, exists := divisionOrdinals[d]
	if !exists {
		return 5
	}
	return ordinal
}

func (d Division) String() string {
	if d < DivisionI || d > DivisionIV {
		return ""
	}
	return divisionNames[d-1]
}

// Entry is a single ranked queue standing.
// The zero value is an unranked entry.
type Entry struct {
	Queue        queuevalues.Type
	Tier         Tier
	Division     Division
	LeaguePoints int
	Wins         int
	Losses       int
}

// NewEntry builds an entry from the raw league entry values.
func NewEntry(queueType, tier, division string, lp, wins, losses int) Entry {
	return Entry{
		Queue:        queuevalues.Parse(queueType),
		Tier:         ParseTier(tier),
		Division:     ParseDivision(division),
		LeaguePoints: max(lp, 0),
		Wins:         max(wins, 0),
		Losses:       max(losses, 0),
	}
}

// IsRanked reports whether the entry has a tier.
func (e Entry) IsRanked() bool {
	return e.Tier != Unranked
}

// GamesPlayed is the number of ranked games in the queue.
func (e Entry) GamesPlayed() int {
	return e.Wins + e.Losses
}

// WinRate returns the win percentage, 0 without games.
func (e Entry) WinRate() float64 {
	if e.GamesPlayed() == 0 {
		return 0
	}
	return float64(e.Wins) * 100 / float64(e.GamesPlayed())
}

// divisionOrdinal is the division ordinal with apex tiers forced to I.
func (e Entry) divisionOrdinal() int {
	if e.Tier.IsApex() {
		return DivisionI.Ordinal()
	}
	return e.Division.Ordinal()
}

// LadderPosition returns a scalar that totally orders entries by strength.
// Tier dominates, then division (I highest), then LP.
func LadderPosition(e Entry) float64 {
	divisionOrdinal := e.divisionOrdinal()

	// An absent division ranks as the weakest label.
	if divisionOrdinal < 1 {
		divisionOrdinal = DivisionOther.Ordinal()
	}

	return 100_000*float64(e.Tier.Ordinal()) + 5_000/float64(divisionOrdinal) + float64(e.LeaguePoints)
}

// LeaguePointsEquivalent returns the entry as an absolute LP figure.
// Every tier is worth 400 LP; results at or below 100 show as 0.
func LeaguePointsEquivalent(e Entry) int {
	divisionOrdinal := e.divisionOrdinal()

	tierLP := 400 * e.Tier.Ordinal()
	rankLP := 400 - 100*divisionOrdinal
	if e.Tier.IsApex() {
		rankLP = 100 - 100*divisionOrdinal
	}

	totalLP := tierLP + rankLP + e.LeaguePoints
	if totalLP > 100 {
		return totalLP
	}
	return 0
}

// Summarize formats the entry like "Gold II 45lp (10W 5L)".
func Summarize(e Entry) string {
	var rank strings.Builder
	rank.WriteString(e.Tier.DisplayName())

	// Apex tiers have no division to show.
	if e.IsRanked() && !e.Tier.IsApex() && e.Division.String() != "" {
		rank.WriteString(" ")
		rank.WriteString(e.Division.String())
	}

	return fmt.Sprintf("%s %dlp (%dW %dL)", rank.String(), e.LeaguePoints, e.Wins, e.Losses)
}
