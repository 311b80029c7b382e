package models

// MinuteRange is a half-open [Start, End) interval in minutes from midnight.
type MinuteRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
