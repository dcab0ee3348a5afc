/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"bytes"
	htmltemplate "html/template"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedMarkup lists the tags kept from backend supplied analysis text.
// Attributes are always dropped.
var allowedMarkup = map[atom.Atom]bool{
	atom.P:      true,
	atom.Br:     true,
	atom.Ul:     true,
	atom.Ol:     true,
	atom.Li:     true,
	atom.Strong: true,
	atom.B:      true,
	atom.Em:     true,
	atom.I:      true,
	atom.H3:     true,
	atom.H4:     true,
	atom.H5:     true,
	atom.Span:   true,
	atom.Div:    true,
}

// droppedSubtree lists tags whose content is discarded along with the tag.
var droppedSubtree = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Iframe:   true,
	atom.Object:   true,
	atom.Template: true,
	atom.Noscript: true,
}

var (
	parseMarkupFragment = html.ParseFragment
	renderMarkup        = html.Render
)

// SanitizeMarkup reduces backend markup to a small set of formatting tags.
// The fragment goes through the HTML parser, so unclosed tags are closed
// inside the returned markup.
func SanitizeMarkup(src string) htmltemplate.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}

	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

	nodes, err := parseMarkupFragment(strings.NewReader(src), container)
	if err != nil {
		return htmltemplate.HTML(html.EscapeString(src)) //nolint:gosec // escaped text only
	}

	for _, node := range nodes {
		container.AppendChild(node)
	}

	clean := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	copyAllowedMarkup(clean, container)

	var buffer bytes.Buffer
	for child := clean.FirstChild; child != nil; child = child.NextSibling {
		if err := renderMarkup(&buffer, child); err != nil {
			return htmltemplate.HTML(html.EscapeString(src)) //nolint:gosec // escaped text only
		}
	}

	//nolint:gosec // Output only contains allow-listed tags and escaped text.
	return htmltemplate.HTML(buffer.String())
}

// copyAllowedMarkup appends to dst a copy of the children of src holding
// only text and allow-listed elements without attributes. Other elements
// are unwrapped unless their whole subtree is dropped.
func copyAllowedMarkup(dst, src *html.Node) {
	for child := src.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			dst.AppendChild(&html.Node{Type: html.TextNode, Data: child.Data})
		case html.ElementNode:
			if droppedSubtree[child.DataAtom] {
				continue
			}
			if !allowedMarkup[child.DataAtom] {
				copyAllowedMarkup(dst, child)
				continue
			}

			el := &html.Node{Type: html.ElementNode, Data: child.DataAtom.String(), DataAtom: child.DataAtom}
			dst.AppendChild(el)
			copyAllowedMarkup(el, child)
		}
	}
}
