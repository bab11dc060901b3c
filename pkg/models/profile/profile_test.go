package profile

import (
	"errors"
	"testing"
	"unicode/utf8"

	queuevalues "lolladder/pkg/riotvalues/queue"
	tiervalues "lolladder/pkg/riotvalues/tier"

	"github.com/stretchr/testify/assert"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		name     string
		profile  *Profile
		expected string
	}{
		{
			name:     "padded",
			profile:  New("Budo", "Juél", "0000"),
			expected: "Budo (Juél #0000)                ",
		},
		{
			name:     "one space left",
			profile:  New("ThomasLegend", "A Dumb Drunk", "EUW"),
			expected: "ThomasLegend (A Dumb Drunk #EUW) ",
		},
		{
			name:     "long game name",
			profile:  New("Nicolai", "NicoWhuuuutxD", "EUW"),
			expected: "Nicolai (NicoWhuuuutxD #EUW)     ",
		},
		{
			name:     "longer than the column",
			profile:  New("DavidSnawerTheGreat", "CrowexTheGodOne", "EUW"),
			expected: "DavidSnawerTheGreat (CrowexTheGod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.profile.FormatName()
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, NameWidth, utf8.RuneCountInString(result))
		})
	}
}

func TestSetRanks(t *testing.T) {
	p := New("Tombom", "Tombom", "EUW")
	assert.Equal(t, NotFetched, p.Ranks.State)

	p.SetRanks([]tiervalues.Entry{
		tiervalues.NewEntry("RANKED_FLEX_SR", "SILVER", "I", 12, 3, 4),
		tiervalues.NewEntry("CHERRY", "GOLD", "I", 12, 3, 4),
	})

	assert.True(t, p.Ranks.Ok())
	assert.Equal(t, tiervalues.Silver, p.Rank(queuevalues.Flex).Tier)
	assert.False(t, p.Rank(queuevalues.Solo).IsRanked())
	assert.False(t, p.Rank(queuevalues.Unknown).IsRanked())
}

func TestFieldStates(t *testing.T) {
	var field Field[string]
	assert.False(t, field.Ok())
	assert.Equal(t, "not fetched", field.State.String())

	field.Fail(errors.New("boom"))
	assert.Equal(t, Failed, field.State)
	assert.EqualError(t, field.Err, "boom")

	field.Set("puuid")
	assert.True(t, field.Ok())
	assert.NoError(t, field.Err)

	var skipped Field[Summoner]
	skipped.Skip()
	assert.Equal(t, "skipped", skipped.State.String())
	assert.Zero(t, skipped.Value.Level)
}

func TestDisplayStats(t *testing.T) {
	p := New("Marco", "Dog", "Rteon")
	p.SetRanks([]tiervalues.Entry{
		tiervalues.NewEntry("RANKED_SOLO_5x5", "GOLD", "II", 45, 10, 5),
	})

	assert.Equal(t, "Marco (Dog #Rteon)               1445 LP - Gold II 45lp (10W 5L)", p.DisplayStats(queuevalues.Solo))
	assert.Equal(t, "Marco (Dog #Rteon)               0 LP - Unranked 0lp (0W 0L)", p.DisplayStats(queuevalues.Flex))
}

func TestDisplayLevel(t *testing.T) {
	p := New("Zimon", "Fandersay", "EUW")
	p.Summoner.Set(Summoner{Id: "id", Level: 340})

	assert.Equal(t, 2380.0, p.TotalHours())
	assert.Equal(t, "Zimon (Fandersay #EUW)           2380 hours, 7.0 h/week (Lv. 340)", p.DisplayLevel(340))
	assert.Equal(t, "Zimon (Fandersay #EUW)           2380 hours, 0.0 h/week (Lv. 340)", p.DisplayLevel(0))

	empty := New("Noah", "CrowexTheGodOne", "EUW")
	assert.Equal(t, "Noah (CrowexTheGodOne #EUW)      0 hours, 0.0 h/week (Lv. 0)", empty.DisplayLevel(340))
}
