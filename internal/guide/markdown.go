package guide

import "strings"

// The display renderer turns raw section text into a flat node sequence the
// client can render directly: plain text runs, markdown links, explicit line
// breaks, and at most one pipe table. Read-only, no round-trip requirement.

type NodeKind string

const (
	NodeText      NodeKind = "text"
	NodeLink      NodeKind = "link"
	NodeLineBreak NodeKind = "linebreak"
	NodeTable     NodeKind = "table"
)

type DisplayNode struct {
	Kind   NodeKind   `json:"kind"`
	Text   string     `json:"text,omitempty"`
	URL    string     `json:"url,omitempty"`
	Header []string   `json:"header,omitempty"`
	Rows   [][]string `json:"rows,omitempty"`
}

// RenderSection builds the display tree for one section text. The first
// well-formed pipe table becomes a single table node; everything around it is
// rendered as text, link and linebreak nodes.
func RenderSection(text string) []DisplayNode {
	span, ok := findFlightTable(text)
	if !ok {
		return renderInline(text)
	}

	var nodes []DisplayNode
	nodes = append(nodes, renderInline(text[:span.start])...)
	nodes = append(nodes, renderTable(span))
	nodes = append(nodes, renderInline(text[span.end:])...)
	return nodes
}

func renderTable(span tableSpan) DisplayNode {
	rows := make([][]string, 0, len(span.body))
	for _, row := range span.body {
		cells := splitRowCells(row)
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return DisplayNode{
		Kind:   NodeTable,
		Header: splitRowCells(span.header),
		Rows:   rows,
	}
}

// renderInline emits text/link nodes per line with linebreak nodes between
// lines.
func renderInline(text string) []DisplayNode {
	if text == "" {
		return nil
	}

	var nodes []DisplayNode
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, DisplayNode{Kind: NodeLineBreak})
		}
		nodes = append(nodes, renderLine(line)...)
	}
	return nodes
}

func renderLine(line string) []DisplayNode {
	var nodes []DisplayNode
	rest := line
	for rest != "" {
		label, url, before, after, ok := nextLink(rest)
		if !ok {
			nodes = append(nodes, DisplayNode{Kind: NodeText, Text: rest})
			break
		}
		if before != "" {
			nodes = append(nodes, DisplayNode{Kind: NodeText, Text: before})
		}
		nodes = append(nodes, DisplayNode{Kind: NodeLink, Text: label, URL: url})
		rest = after
	}
	return nodes
}

// nextLink finds the first "[label](url)" in the line and returns the text
// before and after it.
func nextLink(line string) (label, url, before, after string, ok bool) {
	open := strings.Index(line, "[")
	if open < 0 {
		return "", "", "", "", false
	}
	mid := strings.Index(line[open:], "](")
	if mid < 2 {
		return "", "", "", "", false
	}
	urlStart := open + mid + 2
	end := strings.Index(line[urlStart:], ")")
	if end < 0 {
		return "", "", "", "", false
	}
	label = line[open+1 : open+mid]
	url = line[urlStart : urlStart+end]
	before = line[:open]
	after = line[urlStart+end+1:]
	return label, url, before, after, true
}
