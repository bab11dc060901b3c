package queuevalues

import "strings"

// Type is a ranked queue with its own independent rating track.
type Type int

const (
	Unknown Type = iota
	Solo
	Flex
)

// Riot names for the ranked queues, as returned by the league endpoints.
const (
	SoloQueueName = "RANKED_SOLO_5x5"
	FlexQueueName = "RANKED_FLEX_SR"
)

// RankedQueueValue maps the numeric queue ids to the league queue names.
var RankedQueueValue = map[int]string{
	420: SoloQueueName,
	440: FlexQueueName,
}

// Parse converts a league entry queue name to a Type.
// Anything that isn't one of the two ranked 5v5 queues is Unknown.
func Parse(name string) Type {
	switch strings.TrimSpace(name) {
	case SoloQueueName:
		return Solo
	case FlexQueueName:
		return Flex
	default:
		return Unknown
	}
}

// QueueID returns the numeric queue id, or 0 for Unknown.
func (t Type) QueueID() int {
	switch t {
	case Solo:
		return 420
	case Flex:
		return 440
	default:
		return 0
	}
}

func (t Type) String() string {
	switch t {
	case Solo:
		return SoloQueueName
	case Flex:
		return FlexQueueName
	default:
		return "UNKNOWN"
	}
}
