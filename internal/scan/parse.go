package scan

import (
	"regexp"
	"strings"
	"time"

	"jobtracker/pkg/domain"
)

// maxNameLength caps parsed company and role strings; longer captures are
// almost always a mis-parse of marketing copy.
const maxNameLength = 120

// subjectPatterns extract a company and/or role from common confirmation
// subject lines. Order matters: the most specific shapes come first so a
// generic pattern cannot shadow them.
var subjectPatterns = []*regexp.Regexp{ //nolint: gochecknoglobals
	// "your application for ROLE at COMPANY"
	regexp.MustCompile(`(?i)(?:your\s+)?application\s+(?:to|for)\s+(?P<role>.+?)\s+at\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "thanks for applying for ROLE at COMPANY"
	regexp.MustCompile(`(?i)(?:thank(?:s|\s+you)\s+for\s+apply(?:ing)?(?:\s+for)?)\s+(?:the\s+)?(?P<role>.+?)\s+(?:position\s+)?at\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "thank you for applying to COMPANY"
	regexp.MustCompile(`(?i)thank(?:s|\s+you)\s+for\s+applying\s+to\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "thanks for applying to COMPANY" (no "you")
	regexp.MustCompile(`(?i)thanks?\s+for\s+applying\s+to\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// LinkedIn: "application was sent to COMPANY", dropping suffixes like "(TSX: ADCO)"
	regexp.MustCompile(`(?i)application\s+was\s+sent\s+to\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*\([^)]*\))?(?:\s*[|,!]|$)`),
	// LinkedIn: "application was viewed by COMPANY"
	regexp.MustCompile(`(?i)application\s+was\s+viewed\s+by\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "Application Update from COMPANY"
	regexp.MustCompile(`(?i)application\s+update\s+from\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "Your application to COMPANY" / "Re: Your application to COMPANY"
	regexp.MustCompile(`(?i)(?:re:\s*)?(?:your\s+)?application\s+to\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "COMPANY - Thank you for your application - ROLE"
	regexp.MustCompile(`(?i)^(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]{1,50}?)\s*[\-–—]\s*thank\s+you\s+for\s+your\s+application\s*[\-–—]\s*(?P<role>[A-Za-z0-9][A-Za-z0-9\s&.,'\-/]+?)(?:\s*[|,!]|$)`),
	// "We Got It: Thanks for applying for ROLE" / "Thanks for applying for ROLE"
	regexp.MustCompile(`(?i)(?:we\s+got\s+it[:\s]+)?thanks?\s+for\s+applying\s+for\s+(?P<role>[A-Za-z0-9][A-Za-z0-9\s&.,'\-/]+?)(?:\s*[|,!]|$)`),
	// "ROLE opportunity at COMPANY"
	regexp.MustCompile(`(?i)(?P<role>[A-Za-z0-9][A-Za-z0-9\s&.,'\-/]{2,60}?)\s+opportunity\s+at\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "your application - ROLE"
	regexp.MustCompile(`(?i)(?:your\s+)?application\s*[\-–—]\s*(?P<role>[A-Za-z0-9][A-Za-z0-9\s&.,'\-/]{3,80}?)(?:\s*[\-–—]|$)`),
	// "interest in joining us at COMPANY"
	regexp.MustCompile(`(?i)interest\s+in\s+joining\s+(?:us\s+)?at\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "your application for ROLE" (has been / was reviewed…)
	regexp.MustCompile(`(?i)(?:your\s+)?application\s+for\s+(?P<role>[A-Za-z0-9][A-Za-z0-9\s&.,'\-/]+?)(?:\s+has\s+been|\s+was|\s*[|,!]|$)`),
	// "received your application [for ROLE] at COMPANY"
	regexp.MustCompile(`(?i)(?:we\s+)?received\s+your\s+application\s+(?:for\s+(?P<role>.+?)\s+)?at\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "next steps at COMPANY"
	regexp.MustCompile(`(?i)next\s+steps?\s+(?:for\s+your\s+(?:application|candidacy)\s+)?at\s+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "interview invitation — COMPANY"
	regexp.MustCompile(`(?i)interview\s+invitation[\s\-–—]+(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)(?:\s*[|,!]|$)`),
	// "COMPANY — interview / phone screen / technical screen"
	regexp.MustCompile(`(?i)^(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]+?)\s*[\-–—]+\s*(?:interview|phone\s+screen|technical\s+screen)`),
	// "COMPANY — ROLE — application"
	regexp.MustCompile(`(?i)^(?P<company>[A-Za-z0-9][A-Za-z0-9\s&.,'\-]{2,40})\s*[\-–—:]\s*(?P<role>[A-Za-z0-9][A-Za-z0-9\s&.,'\-/]{2,80})\s*[\-–—]\s*application`),
}

// statusHints map wording in subject or snippet to a pipeline stage. First
// hit wins; no hit means the application was merely submitted.
var statusHints = []struct { //nolint: gochecknoglobals
	re     *regexp.Regexp
	status domain.ApplicationStatus
}{
	{regexp.MustCompile(`(?i)\b(offer|congratulations|pleased to inform|job offer)\b`), domain.ApplicationStatusOffer},
	{regexp.MustCompile(`(?i)\b(interview|assessment|screening|schedule)\b`), domain.ApplicationStatusInterviewing},
	{regexp.MustCompile(`(?i)\b(unfortunately|regret|not moving forward|not selected|declined)\b`), domain.ApplicationStatusRejected},
}

// atsHosts are hostname labels that belong to mail infrastructure or
// applicant-tracking systems, never to the hiring company itself.
var atsHosts = map[string]struct{}{ //nolint: gochecknoglobals
	"mail": {}, "email": {}, "notification": {}, "notifications": {}, "noreply": {},
	"no-reply": {}, "careers": {}, "jobs": {}, "comeet": {}, "greenhouse": {}, "lever": {},
	"workday": {}, "bamboohr": {}, "smartrecruiters": {}, "taleo": {}, "icims": {},
	"jobvite": {}, "ashbyhq": {}, "ashby": {}, "rippling": {}, "gusto": {}, "myworkday": {},
	"successfactors": {}, "oracle": {}, "peoplesoft": {}, "ultipro": {}, "adp": {},
	"paychex": {}, "zenefits": {}, "breezy": {}, "jazz": {}, "applytojob": {},
	"hire": {}, "recruiting": {}, "workable": {}, "pinpoint": {}, "recruitee": {},
}

var senderDomainRe = regexp.MustCompile(`@([\w.\-]+)`)

// parsedApplication is the outcome of parsing one email into an application
// candidate.
type parsedApplication struct {
	Company   string
	Role      string
	Status    domain.ApplicationStatus
	AppliedAt time.Time
}

// parseApplication tries to extract a company and role from an email, subject
// first and snippet second. It returns nil when no pattern applies.
func parseApplication(email domain.Email) *parsedApplication {
	haystack := email.Subject + " " + email.Snippet

	for _, text := range []string{email.Subject, email.Snippet} {
		if text == "" {
			continue
		}
		for _, pattern := range subjectPatterns {
			groups := namedGroups(pattern, text)
			if groups == nil {
				continue
			}
			company := trimCaptured(groups["company"])
			role := trimCaptured(groups["role"])

			if company == "" {
				company = senderCompany(email.Sender)
				if company == "" {
					company = "Unknown Company"
				}
			}

			// over-long captures are mis-parses; try the next pattern
			if len(role) > maxNameLength || len(company) > maxNameLength {
				continue
			}

			return &parsedApplication{
				Company:   company,
				Role:      role,
				Status:    inferStatus(haystack),
				AppliedAt: email.ReceivedAt,
			}
		}
	}

	return nil
}

// extractRoleFromSubjects scans sibling subjects for the first one that
// yields a role. Used to backfill company-only parses.
func extractRoleFromSubjects(subjects []string) string {
	for _, subject := range subjects {
		if subject == "" {
			continue
		}
		for _, pattern := range subjectPatterns {
			groups := namedGroups(pattern, subject)
			if groups == nil {
				continue
			}
			if role := trimCaptured(groups["role"]); role != "" {
				return role
			}
		}
	}

	return ""
}

// senderCompany derives a company name from the sender address, e.g.
// "noreply@careers.acme.com" becomes "Acme". ATS and mail-infrastructure
// labels are skipped; an empty result means nothing usable was left.
func senderCompany(sender string) string {
	m := senderDomainRe.FindStringSubmatch(sender)
	if m == nil {
		return ""
	}
	parts := strings.Split(strings.ToLower(m[1]), ".")

	// drop the TLD, then take the last meaningful label
	var meaningful []string
	for _, p := range parts[:len(parts)-1] {
		if _, skip := atsHosts[p]; !skip {
			meaningful = append(meaningful, p)
		}
	}
	if len(meaningful) > 0 {
		return capitalize(meaningful[len(meaningful)-1])
	}
	if len(parts) > 0 {
		if _, skip := atsHosts[parts[0]]; !skip {
			return capitalize(parts[0])
		}
	}

	return ""
}

// inferStatus maps hint wording to a status, defaulting to applied.
func inferStatus(text string) domain.ApplicationStatus {
	for _, hint := range statusHints {
		if hint.re.MatchString(text) {
			return hint.status
		}
	}

	return domain.ApplicationStatusApplied
}

// namedGroups runs the pattern and returns its named captures, or nil when
// the pattern does not match.
func namedGroups(re *regexp.Regexp, text string) map[string]string {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(match) {
			groups[name] = match[i]
		}
	}

	return groups
}

func trimCaptured(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".,!")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
