// Package typography rewrites the text nodes of rendered HTML with
// typographic punctuation and ligatures. Markup, attribute values and the
// contents of code-like elements are left alone.
package typography

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

type Options struct {
	Punctuation bool
	Ligatures   bool
}

func (o Options) Enabled() bool { return o.Punctuation || o.Ligatures }

var skipTags = map[string]bool{
	"pre":      true,
	"code":     true,
	"kbd":      true,
	"samp":     true,
	"script":   true,
	"style":    true,
	"textarea": true,
	"math":     true,
}

var dashes = strings.NewReplacer(
	"---", "&#8212;",
	"--", "&#8211;",
	"...", "&#8230;",
	". . .", "&#8230;",
)

var unescapeQuotes = strings.NewReplacer(
	"&quot;", `"`,
	"&#34;", `"`,
	"&#39;", "'",
	"&#x27;", "'",
)

var ligatureReplacer = strings.NewReplacer(
	"fl", "&#xFB02;",
	"fi", "&#xFB01;",
)

// Apply returns src with the enabled transforms applied.
func Apply(src string, opts Options) (string, error) {
	if !opts.Enabled() || src == "" {
		return src, nil
	}

	var out bytes.Buffer
	out.Grow(len(src) + len(src)/8)

	z := html.NewTokenizer(strings.NewReader(src))
	depth := 0
	prev := byte(' ')
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				break
			}
			return "", z.Err()
		}

		raw := z.Raw()
		switch tt {
		case html.StartTagToken, html.EndTagToken:
			name, _ := z.TagName()
			if skipTags[string(name)] {
				if tt == html.StartTagToken {
					depth++
				} else if depth > 0 {
					depth--
				}
			}
			out.Write(raw)
		case html.TextToken:
			if depth > 0 {
				out.Write(raw)
				continue
			}
			text := string(raw)
			if opts.Punctuation {
				text = Punctuate(text, prev)
			}
			if opts.Ligatures {
				text = ligatureReplacer.Replace(text)
			}
			if len(raw) > 0 {
				prev = raw[len(raw)-1]
			}
			out.WriteString(text)
		default:
			out.Write(raw)
		}
	}
	return out.String(), nil
}

// Punctuate converts straight quotes, dashes and ellipses in a run of
// text. prev is the character that preceded the run, used to decide
// whether a leading quote opens or closes.
func Punctuate(text string, prev byte) string {
	text = dashes.Replace(unescapeQuotes.Replace(text))

	var b strings.Builder
	b.Grow(len(text) + 16)
	last := prev
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '"':
			if opensQuote(last) {
				b.WriteString("&#8220;")
			} else {
				b.WriteString("&#8221;")
			}
		case '\'':
			if opensQuote(last) {
				b.WriteString("&#8216;")
			} else {
				b.WriteString("&#8217;")
			}
		default:
			b.WriteByte(c)
		}
		last = c
	}
	return b.String()
}

func opensQuote(prev byte) bool {
	switch prev {
	case ' ', '\t', '\n', '\r', '(', '[', '{', '-', ';':
		return true
	}
	return false
}
