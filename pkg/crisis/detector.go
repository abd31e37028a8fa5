// Package crisis flags messages that contain crisis language so callers can
// bypass AI generation and answer with fixed safety resources.
package crisis

import "strings"

// Keywords are matched by case-insensitive substring containment. Substring
// matching means "cutting board" trips the detector; that false positive is
// accepted, a missed crisis message is not. Do not switch to word-boundary
// matching without clinical review.
var Keywords = []string{
	"suicide",
	"suicidal",
	"kill myself",
	"end my life",
	"don't want to live",
	"want to die",
	"better off dead",
	"hurt myself",
	"self-harm",
	"cutting",
	"hopeless",
	"no reason to live",
	"can't go on",
	"end it all",
	"give up on life",
}

// Detect reports whether message contains any crisis keyword. It performs no
// I/O and must run before any model call so a crisis response never waits on
// the network.
func Detect(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
