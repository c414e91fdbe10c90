package scan

import (
	"regexp"
	"strings"

	"jobtracker/pkg/domain"
)

// matchThreshold is the minimum score before a link is trusted.
const matchThreshold = 5

// fillerWords are stripped before keyword comparison; they appear in nearly
// every job-related subject and would inflate any overlap.
var fillerWords = map[string]struct{}{ //nolint: gochecknoglobals
	"re": {}, "fw": {}, "fwd": {}, "your": {}, "application": {}, "for": {}, "at": {}, "to": {}, "the": {},
	"a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "in": {}, "on": {}, "is": {}, "was": {}, "has": {},
	"thank": {}, "you": {}, "update": {}, "status": {}, "interview": {}, "position": {}, "role": {},
	"opportunity": {}, "offer": {}, "letter": {}, "regarding": {}, "following": {}, "up": {},
}

var wordRe = regexp.MustCompile(`[a-zA-Z0-9]+`)

// extractKeywords returns the lowercased non-filler words of text. Words of
// one or two characters carry no signal and are dropped.
func extractKeywords(text string) map[string]struct{} {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	keywords := make(map[string]struct{}, len(words))
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if _, filler := fillerWords[w]; filler {
			continue
		}
		keywords[w] = struct{}{}
	}

	return keywords
}

func overlap(a, b map[string]struct{}) int {
	var n int
	for w := range b {
		if _, ok := a[w]; ok {
			n++
		}
	}

	return n
}

// matchApplication scores every application against the email's subject and
// sender and returns the best one, or nil when nothing reaches the threshold.
// Exact substring hits on company or role dominate; keyword overlap breaks
// the remaining distance.
func matchApplication(email domain.Email, apps []domain.Application) *domain.Application {
	if len(apps) == 0 {
		return nil
	}

	haystack := strings.ToLower(email.Subject + " " + email.Sender)
	hayKeywords := extractKeywords(haystack)

	var (
		best      *domain.Application
		bestScore int
	)
	for i := range apps {
		app := &apps[i]
		company := strings.ToLower(app.CompanyName)
		role := strings.ToLower(app.RoleTitle)

		var score int
		if company != "" && strings.Contains(haystack, company) {
			score += 10
		}
		if role != "" && strings.Contains(haystack, role) {
			score += 8
		}

		score += overlap(hayKeywords, extractKeywords(company)) * 3
		if role != "" {
			score += overlap(hayKeywords, extractKeywords(role)) * 2
		}

		if score > bestScore {
			bestScore = score
			best = app
		}
	}

	if bestScore < matchThreshold {
		return nil
	}

	return best
}
