package guide

import "strings"

// NotFound is the sentinel value for a section whose heading never appears in
// the AI output. It is surfaced to the caller, never raised as an error.
const NotFound = "Not found"

// Section heading keywords, in the order the guide prompt requests them.
const (
	KeywordItinerary      = "ITINERARY"
	KeywordAccommodations = "FLIGHTS & ACCOMMODATIONS"
	KeywordSafety         = "SAFETY AND CRIME"
	KeywordHealth         = "HEALTH INFORMATION"
	KeywordEnvironmental  = "ENVIRONMENTAL AND DISASTERS"
	KeywordTips           = "TRAVEL TIPS"
)

var sectionKeywords = []string{
	KeywordItinerary,
	KeywordAccommodations,
	KeywordSafety,
	KeywordHealth,
	KeywordEnvironmental,
	KeywordTips,
}

// Sections holds the six raw section texts cut out of a guide response.
type Sections struct {
	Itinerary      string `json:"itinerary"`
	Accommodations string `json:"accommodations"`
	Safety         string `json:"safety"`
	Health         string `json:"health"`
	Environmental  string `json:"environmental"`
	Tips           string `json:"tips"`
}

type sectionAnchor struct {
	pos     int
	keyword int // index into sectionKeywords
}

// SplitSections cuts the raw AI response into the six named sections. Each
// section starts at the first occurrence of its heading keyword
// (case-insensitive, anywhere in the text, not just at line start) and runs
// until the next recognized heading or the end of the text. The heading line
// stays inside its section. A keyword that never matches yields NotFound.
func SplitSections(text string) Sections {
	anchors := findSectionAnchors(text)

	// first matching segment wins per keyword
	parts := make([]string, len(sectionKeywords))
	for i, a := range anchors {
		end := len(text)
		if i+1 < len(anchors) {
			end = anchors[i+1].pos
		}
		if parts[a.keyword] == "" {
			parts[a.keyword] = text[a.pos:end]
		}
	}
	for i := range parts {
		if parts[i] == "" {
			parts[i] = NotFound
		}
	}

	return Sections{
		Itinerary:      parts[0],
		Accommodations: parts[1],
		Safety:         parts[2],
		Health:         parts[3],
		Environmental:  parts[4],
		Tips:           parts[5],
	}
}

// findSectionAnchors scans the text once and records every position where one
// of the keywords begins. When two keywords would match at the same position
// the one listed first wins.
func findSectionAnchors(text string) []sectionAnchor {
	var anchors []sectionAnchor
	for i := 0; i < len(text); i++ {
		for k, kw := range sectionKeywords {
			if matchesKeywordAt(text, i, kw) {
				anchors = append(anchors, sectionAnchor{pos: i, keyword: k})
				break
			}
		}
	}
	return anchors
}

func matchesKeywordAt(text string, pos int, keyword string) bool {
	if pos+len(keyword) > len(text) {
		return false
	}
	return strings.EqualFold(text[pos:pos+len(keyword)], keyword)
}
