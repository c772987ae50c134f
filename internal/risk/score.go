// Package risk assigns a risk level and numeric score to a matched pair or
// orphan, per spec §4.8.
package risk

import (
	"strings"
	"time"

	"github.com/lighthouse-iam/uar-engine/internal/model"
)

// DefaultDormancyDays is the default threshold (in days) beyond which a
// last_login marks a user dormant.
const DefaultDormancyDays = 90

// DefaultPrivilegedKeywords is the default set of substrings (matched
// case-insensitively against role/entitlement) that mark a user
// privileged.
var DefaultPrivilegedKeywords = []string{
	"admin", "root", "superuser", "owner", "global_admin", "domain_admin",
	"system", "privileged",
}

// dateLayouts is the fixed ordered list of formats last_login is parsed
// against, grounded on tinySQL's importer.DateTimeFormats defaults and
// extended with an abbreviated-month layout per spec §4.8. Unparseable
// dates are never dormant (the loop simply exhausts without success).
var dateLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"02.01.2006 15:04:05",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Score evaluates the rule table of spec §4.8 for one matched pair (or an
// orphan, where sot is nil) and the given match type. now is the
// processing timestamp; dormancyDays and privilegedKeywords override the
// defaults when positive/nonempty.
func Score(sot *model.SoTRecord, sat model.SatelliteRecord, matchType model.MatchType, now time.Time, dormancyDays int, privilegedKeywords []string) model.RiskFinding {
	if matchType == model.MatchOrphan {
		return model.RiskFinding{Level: model.RiskHigh, Score: 80, Rule: "orphan"}
	}

	if dormancyDays <= 0 {
		dormancyDays = DefaultDormancyDays
	}
	if len(privilegedKeywords) == 0 {
		privilegedKeywords = DefaultPrivilegedKeywords
	}

	terminatedActive := sot != nil &&
		sot.EmploymentStatus == "terminated" &&
		isActiveAccountStatus(sat.AccountStatus)
	if terminatedActive {
		return model.RiskFinding{Level: model.RiskCritical, Score: 100, Rule: "terminated_with_active_access"}
	}

	priv := isPrivileged(sat, privilegedKeywords)
	dormant := isDormant(sat.LastLogin, now, dormancyDays)

	switch {
	case priv && dormant:
		return model.RiskFinding{Level: model.RiskHigh, Score: 80, Rule: "privileged_and_dormant"}
	case dormant:
		return model.RiskFinding{Level: model.RiskMedium, Score: 50, Rule: "dormant"}
	case priv:
		// Covers both the plain "privileged" rule and the "contractor AND
		// privileged" rule from spec §4.8's table: both resolve to
		// MEDIUM/50, so they share this branch rather than needing a
		// separate, never-distinguishable code path.
		return model.RiskFinding{Level: model.RiskMedium, Score: 50, Rule: "privileged"}
	case matchType == model.MatchFuzzyAmbiguous:
		return model.RiskFinding{Level: model.RiskLow, Score: 20, Rule: "fuzzy_ambiguous"}
	default:
		return model.RiskFinding{Level: model.RiskInfo, Score: 0, Rule: "default"}
	}
}

func isActiveAccountStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active", "enabled", "":
		return true
	default:
		return false
	}
}

func isPrivileged(sat model.SatelliteRecord, keywords []string) bool {
	haystack := strings.ToLower(sat.Role + " " + sat.Entitlement)
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func isDormant(lastLogin string, now time.Time, thresholdDays int) bool {
	lastLogin = strings.TrimSpace(lastLogin)
	if lastLogin == "" {
		return false
	}
	t, ok := parseDate(lastLogin)
	if !ok {
		return false
	}
	cutoff := now.AddDate(0, 0, -thresholdDays)
	return t.Before(cutoff)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
