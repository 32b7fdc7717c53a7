package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Inline patterns operate on already-escaped text. The order they are
// applied in is load-bearing: code spans are carved out first so emphasis
// never touches their content, and double-marker bold runs before
// single-marker italic so **x** is not read as nested italics. Links are
// parsed last, so emphasis markers inside a link label are styled before
// the anchor is built.
var (
	codeSpanRe = regexp.MustCompile("`([^`]+)`")
	boldRe     = regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)
	italicRe   = regexp.MustCompile(`\*(.+?)\*|_(.+?)_`)
	linkRe     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	headingRe     = regexp.MustCompile(`^(#{1,6}) (.*)$`)
	orderedItemRe = regexp.MustCompile(`^\d+\. (.*)$`)
)

// Render converts markdown to HTML. Same input always yields same output.
//
// Supported constructs: ATX headings (# through ######), fenced code blocks,
// unordered and ordered lists, inline code, bold, italic, links, and
// paragraphs. Anything else passes through as paragraph text.
func Render(input string) string {
	lines := strings.Split(input, "\n")

	var out []string
	var paragraph []string
	var listItems []string
	listTag := ""
	inCode := false

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}
		rendered := make([]string, len(paragraph))
		for i, l := range paragraph {
			rendered[i] = renderSpans(l)
		}
		out = append(out, "<p>"+strings.Join(rendered, "\n")+"</p>")
		paragraph = nil
	}

	flushList := func() {
		if len(listItems) == 0 {
			return
		}
		out = append(out, "<"+listTag+">")
		out = append(out, listItems...)
		out = append(out, "</"+listTag+">")
		listItems = nil
		listTag = ""
	}

	flushBlocks := func() {
		flushParagraph()
		flushList()
	}

	for _, line := range lines {
		// Fence lines toggle code state; content inside is verbatim,
		// escaped, and excluded from every other rule.
		if strings.HasPrefix(line, "```") {
			if !inCode {
				flushBlocks()
				language := strings.TrimSpace(strings.TrimPrefix(line, "```"))
				if language != "" {
					out = append(out, fmt.Sprintf(`<pre><code class="language-%s">`, escapeHTML(language)))
				} else {
					out = append(out, "<pre><code>")
				}
				inCode = true
			} else {
				out = append(out, "</code></pre>")
				inCode = false
			}
			continue
		}

		if inCode {
			out = append(out, escapeHTML(line))
			continue
		}

		if line == "" || strings.TrimSpace(line) == "" {
			flushBlocks()
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			flushBlocks()
			level := len(m[1])
			out = append(out, fmt.Sprintf("<h%d>%s</h%d>", level, renderSpans(m[2]), level))
			continue
		}

		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			flushParagraph()
			if listTag != "ul" {
				flushList()
				listTag = "ul"
			}
			listItems = append(listItems, "<li>"+renderSpans(line[2:])+"</li>")
			continue
		}

		if m := orderedItemRe.FindStringSubmatch(line); m != nil {
			flushParagraph()
			if listTag != "ol" {
				flushList()
				listTag = "ol"
			}
			listItems = append(listItems, "<li>"+renderSpans(m[1])+"</li>")
			continue
		}

		// A plain line interrupts any open list.
		flushList()
		paragraph = append(paragraph, line)
	}

	// Unterminated code blocks are closed rather than dropped.
	if inCode {
		out = append(out, "</code></pre>")
	}
	flushBlocks()

	return strings.Join(out, "\n")
}

// renderSpans applies inline transformations to a single line of text.
// Each transformation's input is the previous step's output.
func renderSpans(text string) string {
	escaped := escapeHTML(text)

	// Carve out code spans so later rules never re-match their content.
	var b strings.Builder
	last := 0
	for _, loc := range codeSpanRe.FindAllStringSubmatchIndex(escaped, -1) {
		b.WriteString(renderEmphasis(escaped[last:loc[0]]))
		b.WriteString("<code>")
		b.WriteString(escaped[loc[2]:loc[3]])
		b.WriteString("</code>")
		last = loc[1]
	}
	b.WriteString(renderEmphasis(escaped[last:]))
	return b.String()
}

// renderEmphasis applies bold, italic, and link rules, in that order.
func renderEmphasis(text string) string {
	text = boldRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := boldRe.FindStringSubmatch(m)
		if inner[1] != "" {
			return "<strong>" + inner[1] + "</strong>"
		}
		return "<strong>" + inner[2] + "</strong>"
	})

	text = italicRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := italicRe.FindStringSubmatch(m)
		if inner[1] != "" {
			return "<em>" + inner[1] + "</em>"
		}
		return "<em>" + inner[2] + "</em>"
	})

	return linkRe.ReplaceAllString(text, `<a href="$2">$1</a>`)
}

// escapeHTML escapes the characters that would otherwise be interpreted as
// markup by a browser. & must go first so it does not re-escape the others.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
