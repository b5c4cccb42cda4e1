package website

import "strings"

// The scoring heuristics live here as data so the rules stay reviewable in
// one place instead of being scattered through conditionals.

const (
	baselineScore = 50

	ageUnderNinetyDaysDelta = -15
	ageUnderOneYearDelta    = -5
	ageMatureDelta          = 20
	ageUnavailableDelta     = 20

	corporateRegistrarDelta  = 5
	reputableNameserverDelta = 3

	httpsSecureDelta   = 10
	httpsInsecureDelta = -10

	threatFlaggedDelta = -60
	threatCleanDelta   = 10
)

const (
	rationaleAgeUnavailable     = "Domain age unavailable"
	rationaleHttpsSecure        = "Valid HTTPS detected"
	rationaleHttpsInsecure      = "No HTTPS detected"
	rationaleThreatFlagged      = "Flagged by Google Safe Browsing for malware/phishing"
	rationaleThreatClean        = "No threats found"
	rationaleThreatUnconfigured = "Google Safe Browsing key not configured"
)

// Registrars that mostly serve large corporate registrants. Matched as
// case-insensitive substrings of the registrar name.
var corporateRegistrars = []string{
	"markmonitor",
	"csc",
	"com laude",
	"safenames",
	"corporate",
}

// Managed DNS operators whose presence in the nameserver set suggests a
// maintained setup. Matched against the joined lower-cased nameserver list.
var reputableNameservers = []string{
	"cloudflare",
	"google",
	"aws",
	"nsone",
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
