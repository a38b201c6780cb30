package parser

import (
	"html"
	"regexp"
	"strings"
)

var (
	textileBlock   = regexp.MustCompile(`^(h[1-6]|p|bq|bc)\.\s+`)
	textileList    = regexp.MustCompile(`^([*#])\s+(.*)$`)
	textileLink    = regexp.MustCompile(`"([^"]+)":([^\s<"]*[^\s<".,;:!?)])`)
	textileImage   = regexp.MustCompile(`!([^\s!(]+)(?:\(([^)]*)\))?!`)
	textileCode    = regexp.MustCompile(`@([^@\n]+)@`)
	textilePhrases = []struct {
		re  *regexp.Regexp
		tag string
	}{
		{regexp.MustCompile(`(^|[\s(>])\*\*([^*\s](?:[^*]*[^*\s])?)\*\*($|[\s.,;:!?)<])`), "b"},
		{regexp.MustCompile(`(^|[\s(>])__([^_\s](?:[^_]*[^_\s])?)__($|[\s.,;:!?)<])`), "i"},
		{regexp.MustCompile(`(^|[\s(>])\*([^*\s](?:[^*]*[^*\s])?)\*($|[\s.,;:!?)<])`), "strong"},
		{regexp.MustCompile(`(^|[\s(>])_([^_\s](?:[^_]*[^_\s])?)_($|[\s.,;:!?)<])`), "em"},
		{regexp.MustCompile(`(^|[\s(>])-([^-\s](?:[^-]*[^-\s])?)-($|[\s.,;:!?)<])`), "del"},
		{regexp.MustCompile(`(^|[\s(>])\^([^^\s](?:[^^]*[^^\s])?)\^($|[\s.,;:!?)<])`), "sup"},
	}
)

// Textile converts the commonly used subset of Textile markup: headings,
// paragraphs, block quotes, code blocks, lists, links, images and phrase
// modifiers. Blocks that start with an HTML tag pass through untouched.
func Textile(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")

	var out []string
	for _, block := range strings.Split(src, "\n\n") {
		block = strings.Trim(block, "\n")
		if strings.TrimSpace(block) == "" {
			continue
		}
		out = append(out, textileBlockHTML(block))
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

func textileBlockHTML(block string) string {
	if strings.HasPrefix(strings.TrimSpace(block), "<") {
		return block
	}

	if m := textileBlock.FindStringSubmatch(block); m != nil {
		content := block[len(m[0]):]
		switch tag := m[1]; tag {
		case "bc":
			return "<pre><code>" + html.EscapeString(content) + "</code></pre>"
		case "bq":
			return "<blockquote>\n<p>" + textileInline(content) + "</p>\n</blockquote>"
		default:
			return "<" + tag + ">" + textileInline(content) + "</" + tag + ">"
		}
	}

	if list := textileListHTML(block); list != "" {
		return list
	}
	return "<p>" + textileInline(block) + "</p>"
}

// textileListHTML renders a block where every line is a list item, or
// returns "" when the block is not a list.
func textileListHTML(block string) string {
	lines := strings.Split(block, "\n")
	marker := ""
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		m := textileList.FindStringSubmatch(line)
		if m == nil || (marker != "" && m[1] != marker) {
			return ""
		}
		marker = m[1]
		items = append(items, "\t<li>"+textileInline(m[2])+"</li>")
	}

	tag := "ul"
	if marker == "#" {
		tag = "ol"
	}
	return "<" + tag + ">\n" + strings.Join(items, "\n") + "\n</" + tag + ">"
}

func textileInline(s string) string {
	var codes []string
	s = textileCode.ReplaceAllStringFunc(s, func(m string) string {
		codes = append(codes, "<code>"+html.EscapeString(m[1:len(m)-1])+"</code>")
		return "\x00" + string(rune('a'+len(codes)-1)) + "\x00"
	})

	s = textileImage.ReplaceAllStringFunc(s, func(m string) string {
		parts := textileImage.FindStringSubmatch(m)
		return `<img src="` + html.EscapeString(parts[1]) + `" alt="` + html.EscapeString(parts[2]) + `" />`
	})
	s = textileLink.ReplaceAllString(s, `<a href="$2">$1</a>`)

	for _, p := range textilePhrases {
		// Adjacent phrases share a boundary character, so a second pass
		// picks up the ones the first pass skipped.
		for i := 0; i < 2; i++ {
			s = p.re.ReplaceAllString(s, "${1}<"+p.tag+">${2}</"+p.tag+">${3}")
		}
	}

	s = strings.ReplaceAll(s, "\n", "<br />\n")

	for i, c := range codes {
		s = strings.Replace(s, "\x00"+string(rune('a'+i))+"\x00", c, 1)
	}
	return s
}
