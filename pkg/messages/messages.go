package messages

const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	FailedToParseMsg    = "failed to parse API response"
	MissingPrerequisite = "skipping %s for %s: no %s from the previous step"
	RequestFailedMsg    = "API request failed on URL %s"
	RequestTimeoutMsg   = "API request timed out on URL %s"
)
