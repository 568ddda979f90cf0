package model

// Answer is the final pipeline output: a short answer text and the ordered
// citations that locate its sources.
type Answer struct {
	Text      string
	Citations []string
}
