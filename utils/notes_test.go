// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// anchors parses rendered HTML and returns the attributes of every link.
func anchors(t *testing.T, rendered string) []map[string]string {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		t.Fatalf("failed to parse rendered HTML: %v", err)
	}

	var links []map[string]string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			attrs := make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				attrs[a.Key] = a.Val
			}

			links = append(links, attrs)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links
}

func TestRenderNotes(t *testing.T) {
	t.Parallel()

	rendered, err := RenderNotes("* Fasting\nTaken before breakfast")
	if err != nil {
		t.Fatalf("RenderNotes failed: %v", err)
	}

	if !strings.Contains(rendered, "Fasting") || !strings.Contains(rendered, "Taken before breakfast") {
		t.Fatalf("expected notes text in output, got %s", rendered)
	}
}

func TestRenderNotesEmpty(t *testing.T) {
	t.Parallel()

	rendered, err := RenderNotes("  \n ")
	if err != nil {
		t.Fatalf("RenderNotes failed: %v", err)
	}

	if rendered != "" {
		t.Fatalf("expected empty output, got %q", rendered)
	}
}

func TestRenderNotesTooLong(t *testing.T) {
	t.Parallel()

	_, err := RenderNotes(strings.Repeat("a", MaxNotesLength+1))
	if !errors.Is(err, errNotesTooLong) {
		t.Fatalf("expected errNotesTooLong, got %v", err)
	}
}

func TestRenderNotesExternalLinks(t *testing.T) {
	t.Parallel()

	rendered, err := RenderNotes("See [[https://example.com/lab][the lab report]]")
	if err != nil {
		t.Fatalf("RenderNotes failed: %v", err)
	}

	links := anchors(t, rendered)
	if len(links) != 1 {
		t.Fatalf("expected one link, got %d in %s", len(links), rendered)
	}

	link := links[0]
	if link["href"] != "https://example.com/lab" {
		t.Fatalf("unexpected href %q", link["href"])
	}

	if link["target"] != "_blank" {
		t.Fatalf("expected target _blank, got %q", link["target"])
	}

	rel := strings.Fields(link["rel"])
	for _, want := range []string{"noopener", "noreferrer"} {
		found := false

		for _, r := range rel {
			if r == want {
				found = true
			}
		}

		if !found {
			t.Fatalf("expected rel to contain %q, got %q", want, link["rel"])
		}
	}
}

func TestRenderNotesHighlightCodeBlocks(t *testing.T) {
	t.Parallel()

	content := strings.Join([]string{
		"Inline src_sh{date} example",
		"#+BEGIN_SRC sh",
		"echo \"<b>\"",
		"#+END_SRC",
	}, "\n")

	rendered, err := RenderNotes(content)
	if err != nil {
		t.Fatalf("RenderNotes failed: %v", err)
	}

	if !strings.Contains(rendered, "inline-code") {
		t.Fatalf("expected inline-code in output, got %s", rendered)
	}

	if !strings.Contains(rendered, "code-block") {
		t.Fatalf("expected code-block in output, got %s", rendered)
	}

	if strings.Contains(rendered, "<b>") {
		t.Fatalf("expected code to stay escaped, got %s", rendered)
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	input := `<p onclick="steal()">Hi <script>alert(1)</script>` +
		`<a href="javascript:alert(1)">bad</a> ` +
		`<a href="/entries">local</a> ` +
		`<img src="data:image/png;base64,AAAA"><!-- note --></p>` +
		`<style>p{}</style><iframe src="https://example.com"></iframe>`

	output := sanitizeHTML(input)

	for _, unwanted := range []string{"onclick", "<script", "alert(1)", "javascript:", "data:image", "<!--", "<style", "<iframe"} {
		if strings.Contains(output, unwanted) {
			t.Fatalf("expected %q to be removed, got %s", unwanted, output)
		}
	}

	if !strings.Contains(output, `<a href="/entries">local</a>`) {
		t.Fatalf("expected local link to stay unchanged, got %s", output)
	}

	if !strings.Contains(output, "bad") {
		t.Fatalf("expected link text to survive, got %s", output)
	}
}

func TestSanitizeHTMLLinkSchemes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href string
		kept bool
	}{
		{href: "https://example.com", kept: true},
		{href: "http://example.com", kept: true},
		{href: "mailto:lab@example.com", kept: true},
		{href: "/entries?preset=week", kept: true},
		{href: "javascript:alert(1)", kept: false},
		{href: "data:text/html,hi", kept: false},
	}

	for _, tt := range tests {
		output := sanitizeHTML(`<a href="` + tt.href + `">x</a>`)

		links := anchors(t, output)
		kept := len(links) == 1 && links[0]["href"] != ""

		if kept != tt.kept {
			t.Fatalf("href %q kept = %v, want %v (output %s)", tt.href, kept, tt.kept, output)
		}
	}
}
