// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Turns feed titles and descriptions that carry markup into plain single-line text

package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StripHTML removes markup, drops script and style content, decodes
// entities and collapses whitespace
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return collapse(fragment)
	}
	return strip(fragment, true)
}

// StripTags removes markup like StripHTML but leaves entity references as
// written. Use it on text whose entities were already decoded once.
func StripTags(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return collapse(fragment)
	}
	return strip(fragment, false)
}

func strip(fragment string, decode bool) string {
	var parts []string
	skip := 0

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return collapse(fragment)
			}
			return collapse(strings.Join(parts, " "))
		case html.StartTagToken:
			if isRawText(z) {
				skip++
			}
		case html.EndTagToken:
			if isRawText(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			if decode {
				parts = append(parts, string(z.Text()))
			} else {
				parts = append(parts, string(z.Raw()))
			}
		}
	}
}

func isRawText(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	a := atom.Lookup(name)
	return a == atom.Script || a == atom.Style
}

// DecodeEntities decodes named and numeric HTML entities
func DecodeEntities(text string) string {
	if !strings.Contains(text, "&") {
		return text
	}
	return html.UnescapeString(text)
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
