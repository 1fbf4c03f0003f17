/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/niklasfasching/go-org/org"
)

// MaxNotesLength bounds the notes accepted for rendering.
const MaxNotesLength = 10000

var classNames = regexp.MustCompile(`^[a-zA-Z0-9_ -]+$`)

// notesPolicy allows user-generated markup, keeps the code block classes
// and opens external links in a new tab without a referrer.
var notesPolicy = newNotesPolicy()

func newNotesPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(classNames).Globally()
	p.RequireNoFollowOnLinks(false)
	p.RequireNoReferrerOnFullyQualifiedLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return p
}

// RenderNotes converts org-mode entry notes to HTML safe to embed in a page.
func RenderNotes(content string) (string, error) {
	if len(content) > MaxNotesLength {
		return "", errNotesTooLong
	}

	if strings.TrimSpace(content) == "" {
		return "", nil
	}

	doc := org.New().Parse(strings.NewReader(content), "")
	if doc.Error != nil {
		return "", fmt.Errorf("failed to parse notes: %w", doc.Error)
	}

	writer := org.NewHTMLWriter()
	writer.HighlightCodeBlock = func(source, lang string, inline bool, params map[string]string) string {
		if inline {
			return `<code class="inline-code">` + html.EscapeString(source) + `</code>`
		}

		return `<pre><code class="code-block">` + html.EscapeString(source) + `</code></pre>`
	}

	rendered, err := doc.Write(writer)
	if err != nil {
		return "", fmt.Errorf("failed to render notes: %w", err)
	}

	return sanitizeHTML(rendered), nil
}

// sanitizeHTML strips scripts, event handlers and unsafe URLs. Org markup
// can embed raw HTML, so every rendered note goes through it.
func sanitizeHTML(body string) string {
	return notesPolicy.Sanitize(body)
}
