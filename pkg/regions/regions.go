package regions

import (
	"fmt"
	"strings"
)

// Create the types for clarity.
// Account data lives on the main (routing) region, summoner and league data on the sub region.
type (
	MainRegion string
	SubRegion  string
)

// List of regions.
var RegionList = map[MainRegion][]SubRegion{
	"AMERICAS": {"BR1", "LA1", "LA2", "NA1"},
	"EUROPE":   {"EUN1", "EUW1", "TR1", "ME1", "RU"},
	"ASIA":     {"KR", "JP1"},
	"SEA":      {"OC1", "SG2", "TW2", "VN2"},
}

// ParseSubRegion validates a sub region name, case insensitive.
func ParseSubRegion(name string) (SubRegion, error) {
	subRegion := SubRegion(strings.ToUpper(strings.TrimSpace(name)))
	if _, err := subRegion.MainRegion(); err != nil {
		return "", err
	}
	return subRegion, nil
}

// MainRegion returns the routing region a sub region belongs to.
func (s SubRegion) MainRegion() (MainRegion, error) {
	for mainRegion, subRegions := range RegionList {
		for _, subRegion := range subRegions {
			if subRegion == s {
				return mainRegion, nil
			}
		}
	}
	return "", fmt.Errorf("unknown sub region %q", string(s))
}

// Host returns the API host for the sub region.
func (s SubRegion) Host() string {
	return fmt.Sprintf("https://%s.api.riotgames.com", strings.ToLower(string(s)))
}

// Host returns the API host for the main region.
func (m MainRegion) Host() string {
	return fmt.Sprintf("https://%s.api.riotgames.com", strings.ToLower(string(m)))
}
