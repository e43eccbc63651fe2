package intent

import "strings"

// Classify scores message against every catalogue entry and returns the best
// match, or Unknown when nothing matches. Matching is case-insensitive. The
// score of an entry is the fraction of its keywords present in the message
// multiplied by its weight, so intents with more of their vocabulary present
// beat intents with a single incidental hit.
//
// Ties keep the earliest-declared intent: a later entry only wins with a
// strictly greater score. Any string input is accepted; empty or
// whitespace-only messages classify as Unknown.
func Classify(message string) Intent {
	msg := strings.ToLower(message)

	best := Unknown
	bestScore := 0.0
	for _, e := range Catalogue {
		matches := 0
		for _, kw := range e.Keywords {
			if strings.Contains(msg, kw) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		score := float64(matches) / float64(len(e.Keywords)) * e.Weight
		if score > bestScore {
			bestScore = score
			best = e.Intent
		}
	}
	return best
}
