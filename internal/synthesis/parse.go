package synthesis

import (
	"regexp"
	"strconv"
	"strings"
)

// verdictLine matches an explicit overall verdict marker before falling
// back to a bare token scan
var verdictLine = regexp.MustCompile(`(?im)^\s*\*?\*?(?:overall|verdict)\b[:* ]*(PASS|REVISE|REJECT)`)

// ratingLine captures "**<Dimension>:** <value>" lines from the
// specialist verdict block
var ratingLine = regexp.MustCompile(`(?im)^\s*\*\*([A-Za-z ]+):\*\*\s*(.+)$`)

// parseVerdict extracts the overall recommendation from raw synthesis
// text. Severity wins on conflict: a synthesis mentioning both REJECT
// and PASS is a REJECT. Returns VerdictUnknown when no token appears.
func parseVerdict(raw string) Verdict {
	if m := verdictLine.FindStringSubmatch(raw); m != nil {
		return Verdict(strings.ToUpper(m[1]))
	}

	// Fallback: a bare uppercase token anywhere in the text. Scanned
	// case-sensitively so prose like "may pass over" never counts.
	for _, v := range []Verdict{VerdictReject, VerdictRevise, VerdictPass} {
		if strings.Contains(raw, string(v)) {
			return v
		}
	}
	return VerdictUnknown
}

// parseRatings extracts the 1..5 star dimensions from the specialist
// verdict block. Missing or unreadable dimensions are simply absent
// from the map.
func parseRatings(raw string) map[string]int {
	known := make(map[string]bool, len(RatingDimensions))
	for _, d := range RatingDimensions {
		known[d] = true
	}

	ratings := make(map[string]int)
	for _, m := range ratingLine.FindAllStringSubmatch(raw, -1) {
		dim := strings.TrimSpace(m[1])
		if !known[dim] {
			continue
		}
		if n, ok := parseStars(m[2]); ok {
			ratings[dim] = n
		}
	}
	return ratings
}

// parseStars reads a star value in any of the shapes models produce:
// "★★★★", "4/5", "4 stars", "4".
func parseStars(s string) (int, bool) {
	if n := strings.Count(s, "★"); n >= 1 && n <= 5 {
		return n, true
	}
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	}) {
		n, err := strconv.Atoi(field)
		if err == nil && n >= 1 && n <= 5 {
			return n, true
		}
	}
	return 0, false
}
