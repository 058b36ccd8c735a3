package guide

import (
	"fmt"
	"strings"
)

// FlightTableHeading is prepended when a save finds no existing table to
// replace.
const FlightTableHeading = "### FLIGHT PRICE COMPARISON"

// tableSpan is the byte range of the first pipe table found in a text, plus
// its already-split rows. End is exclusive and never includes the trailing
// newline of the last body row.
type tableSpan struct {
	start, end int
	header     string
	body       []string
}

// findFlightTable locates the first well-formed pipe table: a header row
// containing at least two pipes, a separator row made only of '-', ':',
// whitespace and '|', and one or more body rows starting with '|'. Only the
// first table is considered.
func findFlightTable(text string) (tableSpan, bool) {
	offset := 0
	lines := strings.SplitAfter(text, "\n")

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !looksLikeTableRow(line) {
			offset += len(line)
			continue
		}
		if i+1 >= len(lines) || !isSeparatorRow(lines[i+1]) {
			offset += len(line)
			continue
		}

		// collect body rows
		var body []string
		j := i + 2
		for j < len(lines) && looksLikeTableRow(lines[j]) {
			body = append(body, lines[j])
			j++
		}
		if len(body) == 0 {
			offset += len(line)
			continue
		}

		end := offset
		for k := i; k < j; k++ {
			end += len(lines[k])
		}
		// keep the trailing newline of the last body row out of the span
		last := body[len(body)-1]
		if strings.HasSuffix(last, "\n") {
			end--
			if strings.HasSuffix(last, "\r\n") {
				end--
			}
		}
		return tableSpan{start: offset, end: end, header: line, body: body}, true
	}
	return tableSpan{}, false
}

func looksLikeTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") && strings.Count(trimmed, "|") >= 2
}

// isSeparatorRow reports whether the line is an alignment row: at least one
// pipe and nothing but '-', ':', '|' and whitespace.
func isSeparatorRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.Contains(trimmed, "|") {
		return false
	}
	seenDash := false
	for _, r := range trimmed {
		switch r {
		case '-':
			seenDash = true
		case ':', '|', ' ', '\t':
		default:
			return false
		}
	}
	return seenDash
}

// splitRowCells splits a table row on '|', trims every cell and drops the
// empty leading/trailing cells produced by the row's outer pipes.
func splitRowCells(row string) []string {
	cells := strings.Split(strings.TrimRight(row, "\r\n"), "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// ParseFlightTable decodes the first pipe table in the accommodations text
// into flight entries. Columns map positionally: airline, price, duration,
// transit, booking-link cell. Rows with fewer than five columns pad the
// missing trailing fields with empty strings. No table yields an empty
// sequence, never an error.
func ParseFlightTable(text string) []FlightEntry {
	span, ok := findFlightTable(text)
	if !ok {
		return []FlightEntry{}
	}

	entries := make([]FlightEntry, 0, len(span.body))
	for _, row := range span.body {
		cells := splitRowCells(row)
		for len(cells) < 5 {
			cells = append(cells, "")
		}
		entries = append(entries, FlightEntry{
			Airline:  cells[0],
			Price:    cells[1],
			Duration: cells[2],
			Transit:  cells[3],
			Link:     extractLinkURL(cells[4]),
		})
	}
	return entries
}

// extractLinkURL pulls the url out of a "[label](url)" markdown link. A cell
// without the link pattern is returned as-is.
func extractLinkURL(cell string) string {
	open := strings.Index(cell, "[")
	if open < 0 {
		return cell
	}
	mid := strings.Index(cell[open:], "](")
	if mid < 0 || mid == 1 {
		return cell
	}
	end := strings.LastIndex(cell, ")")
	urlStart := open + mid + 2
	if end <= urlStart {
		return cell
	}
	return cell[urlStart:end]
}

// SerializeFlightTable encodes flight entries as a five-column pipe table with
// the session currency substituted into the price header. An airline cell that
// already contains a markdown link (detected by the presence of '[', kept
// deliberately loose for compatibility) is emitted as-is, otherwise it is
// wrapped as a link to the entry's booking url. The booking cell is always a
// fresh "[Book Now](url)" link. An empty sequence encodes to the empty string.
func SerializeFlightTable(entries []FlightEntry, currency string) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| Airline | Est. Price (%s) | Duration | Transit | Booking Link |\n", currency)
	b.WriteString("|:---|:---|:---|:---|:---|")
	for _, e := range entries {
		airline := e.Airline
		if !strings.Contains(airline, "[") {
			airline = fmt.Sprintf("[%s](%s)", e.Airline, e.Link)
		}
		fmt.Fprintf(&b, "\n| %s | %s | %s | %s | [Book Now](%s) |", airline, e.Price, e.Duration, e.Transit, e.Link)
	}
	return b.String()
}

// EmbedFlightTable writes the edited entries back into the accommodations
// text. When the text already holds a table, exactly that span is replaced;
// otherwise a fresh heading plus the table is prepended before the existing
// text. Surrounding freeform content is never lost, and after a save the
// document holds exactly one flight table.
func EmbedFlightTable(text string, entries []FlightEntry, currency string) string {
	table := SerializeFlightTable(entries, currency)

	span, ok := findFlightTable(text)
	if !ok {
		return fmt.Sprintf("%s\n\n%s\n\n%s", FlightTableHeading, table, text)
	}
	return text[:span.start] + table + text[span.end:]
}
