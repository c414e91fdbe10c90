package scan

import "strings"

// keywords is intentionally broad: it catches applications, rejections,
// offers, interviews and recruiter outreach alike. False positives are cheap
// because only headers and a snippet are ever stored.
var keywords = []string{ //nolint: gochecknoglobals
	"interview",
	"application",
	"thank you for applying",
	"applied",
	"recruiter",
	"recruiting",
	"hr",
	"human resources",
	"job offer",
	"offer letter",
	"unfortunately",
	"regret to inform",
	"pleased to inform",
	"moving forward",
	"next steps",
	"hiring",
	"position",
	"candidate",
	"background check",
	"onboarding",
	"start date",
}

// excludePhrases drops social-network noise that would otherwise slip through
// the keyword list.
var excludePhrases = []string{ //nolint: gochecknoglobals
	"wants to connect",
	"accepted your invitation",
	"joined your network",
	"now following you",
	"invitation to connect",
	"connect with",
	"people you may know",
	"grow your network",
	"new connection",
}

// matchesKeywords reports whether subject or snippet looks job-related.
// Exclusions win over keywords.
func matchesKeywords(subject, snippet string) bool {
	haystack := strings.ToLower(strings.TrimSpace(subject + " " + snippet))
	for _, phrase := range excludePhrases {
		if strings.Contains(haystack, phrase) {
			return false
		}
	}
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}

	return false
}
