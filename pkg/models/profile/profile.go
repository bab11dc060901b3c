package profile

import (
	"fmt"
	"strconv"
	"strings"

	queuevalues "lolladder/pkg/riotvalues/queue"
	tiervalues "lolladder/pkg/riotvalues/tier"
)

// NameWidth is the fixed width of the name column on the leaderboards.
const NameWidth = 33

// HoursPerLevel is the estimated playtime needed for one account level.
const HoursPerLevel = 7.0

// FetchState tells apart a value that was never fetched from one that failed or is really zero.
type FetchState int

const (
	NotFetched FetchState = iota
	Fetched
	Failed
	// Skipped means a previous step failed, so this one was never attempted.
	Skipped
)

func (s FetchState) String() string {
	switch s {
	case Fetched:
		return "fetched"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	default:
		return "not fetched"
	}
}

// Field is a fetched value with its fetch state.
type Field[T any] struct {
	Value T
	State FetchState
	Err   error
}

// Ok reports whether the value was fetched.
func (f Field[T]) Ok() bool {
	return f.State == Fetched
}

// Set the value as fetched.
func (f *Field[T]) Set(value T) {
	f.Value = value
	f.State = Fetched
	f.Err = nil
}

// Fail records the failure, the value stays at its default.
func (f *Field[T]) Fail(err error) {
	f.State = Failed
	f.Err = err
}

// Skip marks the value as not attempted.
func (f *Field[T]) Skip() {
	f.State = Skipped
}

// Summoner data from the sub region.
type Summoner struct {
	Id            string
	Level         int
	ProfileIconId int
}

// Ranks holds one entry per ranked queue, unranked by default.
type Ranks struct {
	Solo tiervalues.Entry
	Flex tiervalues.Entry
}

// Profile is one roster account and everything fetched for it.
// It is written only by the pipeline that owns it, then read for rendering.
type Profile struct {
	IrlName  string
	GameName string
	TagLine  string

	// Account holds the puuid.
	Account  Field[string]
	Summoner Field[Summoner]
	Ranks    Field[Ranks]
}

// New creates a empty profile for a roster entry.
func New(irlName string, gameName string, tagLine string) *Profile {
	return &Profile{
		IrlName:  irlName,
		GameName: gameName,
		TagLine:  tagLine,
	}
}

// RiotID returns the "gameName#tagLine" identifier.
func (p *Profile) RiotID() string {
	return p.GameName + "#" + p.TagLine
}

// Level is the summoner level, 0 when unknown.
func (p *Profile) Level() int {
	return p.Summoner.Value.Level
}

// Rank returns the entry for a queue, unranked when absent.
func (p *Profile) Rank(queue queuevalues.Type) tiervalues.Entry {
	switch queue {
	case queuevalues.Solo:
		return p.Ranks.Value.Solo
	case queuevalues.Flex:
		return p.Ranks.Value.Flex
	default:
		return tiervalues.Entry{}
	}
}

// SetRanks splits the league entries by queue.
// Queues missing from the list stay unranked.
func (p *Profile) SetRanks(entries []tiervalues.Entry) {
	var ranks Ranks
	for _, entry := range entries {
		switch entry.Queue {
		case queuevalues.Solo:
			ranks.Solo = entry
		case queuevalues.Flex:
			ranks.Flex = entry
		}
	}
	p.Ranks.Set(ranks)
}

// FormatName returns "irl (game #tag)" cut or padded to the name column width.
func (p *Profile) FormatName() string {
	name := fmt.Sprintf("%s (%s #%s)", p.IrlName, p.GameName, p.TagLine)
	return fitWidth(name, NameWidth)
}

func fitWidth(input string, width int) string {
	runes := []rune(input)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return input + strings.Repeat(" ", width-len(runes))
}

// DisplayStats is the ranked leaderboard line for a queue.
func (p *Profile) DisplayStats(queue queuevalues.Type) string {
	entry := p.Rank(queue)
	return fmt.Sprintf("%s%d LP - %s", p.FormatName(), tiervalues.LeaguePointsEquivalent(entry), tiervalues.Summarize(entry))
}

// TotalHours estimates the playtime from the level.
func (p *Profile) TotalHours() float64 {
	return float64(p.Level()) * HoursPerLevel
}

// DisplayLevel is the playtime leaderboard line, averaged over the given weeks.
func (p *Profile) DisplayLevel(weeks float64) string {
	totalHours := p.TotalHours()

	hoursPerWeek := 0.0
	if weeks > 0 {
		hoursPerWeek = totalHours / weeks
	}

	return fmt.Sprintf("%s%s hours, %.1f h/week (Lv. %d)",
		p.FormatName(), strconv.FormatFloat(totalHours, 'f', -1, 64), hoursPerWeek, p.Level())
}
