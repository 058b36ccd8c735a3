package guide

import (
	"fmt"
	"strings"
)

// ParseItinerary scans the itinerary section text line by line and builds the
// ordered day sequence. A line containing "Day <n>" (case-insensitive,
// anywhere in the line) opens a new day titled with the full trimmed line.
// Lines before the first day heading are dropped. Within a day, a line whose
// trimmed form starts with "-" or "*" becomes a checklist item; any other
// line is appended verbatim (with its newline) to the day's freeform content.
//
// Day ids derive from the heading's line index and are stable only within a
// single parse. Item ids come from the injected generator.
func ParseItinerary(text string, ids IDGenerator) []Day {
	var days []Day
	var current *Day

	lines := strings.Split(text, "\n")
	for idx, line := range lines {
		if isDayHeading(line) {
			if current != nil {
				days = append(days, *current)
			}
			current = &Day{
				ID:        fmt.Sprintf("day-%d", idx),
				Title:     strings.TrimSpace(line),
				Content:   "",
				Checklist: []Item{},
			}
			continue
		}
		if current == nil {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") {
			current.Checklist = append(current.Checklist, Item{
				ID:        fmt.Sprintf("item-%s", ids.NewID()),
				Text:      strings.TrimSpace(trimmed[1:]),
				Completed: false,
			})
		} else {
			current.Content += line + "\n"
		}
	}
	if current != nil {
		days = append(days, *current)
	}
	return days
}

// isDayHeading reports whether the line contains the literal word "Day"
// followed by optional spaces and a digit, case-insensitive.
func isDayHeading(line string) bool {
	for i := 0; i+3 <= len(line); i++ {
		if !strings.EqualFold(line[i:i+3], "day") {
			continue
		}
		j := i + 3
		for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
			j++
		}
		if j < len(line) && line[j] >= '0' && line[j] <= '9' {
			return true
		}
	}
	return false
}

// ItemPatch carries the mutable item fields of an update. Nil fields are left
// unchanged.
type ItemPatch struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// UpdateItem returns a new day sequence with the matching item's fields
// replaced. Unknown day or item ids make it a no-op; untouched days are
// shared, not copied.
func UpdateItem(days []Day, dayID, itemID string, patch ItemPatch) []Day {
	updated := make([]Day, len(days))
	for i, day := range days {
		if day.ID != dayID {
			updated[i] = day
			continue
		}
		checklist := make([]Item, len(day.Checklist))
		for j, item := range day.Checklist {
			if item.ID == itemID {
				if patch.Text != nil {
					item.Text = *patch.Text
				}
				if patch.Completed != nil {
					item.Completed = *patch.Completed
				}
			}
			checklist[j] = item
		}
		day.Checklist = checklist
		updated[i] = day
	}
	return updated
}

// DeleteItem returns a new day sequence with the matching item removed.
// Unknown ids make it a no-op.
func DeleteItem(days []Day, dayID, itemID string) []Day {
	updated := make([]Day, len(days))
	for i, day := range days {
		if day.ID != dayID {
			updated[i] = day
			continue
		}
		checklist := make([]Item, 0, len(day.Checklist))
		for _, item := range day.Checklist {
			if item.ID != itemID {
				checklist = append(checklist, item)
			}
		}
		day.Checklist = checklist
		updated[i] = day
	}
	return updated
}

// AddItem returns a new day sequence with a blank unchecked item appended to
// the matching day's checklist.
func AddItem(days []Day, dayID string, ids IDGenerator) []Day {
	updated := make([]Day, len(days))
	for i, day := range days {
		if day.ID != dayID {
			updated[i] = day
			continue
		}
		checklist := make([]Item, len(day.Checklist), len(day.Checklist)+1)
		copy(checklist, day.Checklist)
		checklist = append(checklist, Item{
			ID:        fmt.Sprintf("item-%s", ids.NewID()),
			Text:      "",
			Completed: false,
		})
		day.Checklist = checklist
		updated[i] = day
	}
	return updated
}
