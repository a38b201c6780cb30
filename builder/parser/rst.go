package parser

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Kush-Singh-26/agora/builder/errs"
	"github.com/Kush-Singh-26/agora/builder/models"
)

// RSTCommands are the docutils front ends tried in order.
var RSTCommands = []string{"rst2html5", "rst2html5.py", "rst2html", "rst2html.py"}

const rstInstallHint = "install docutils (pip install docutils) so that rst2html is on PATH"

// CommandRunner runs an external command with stdin and returns stdout.
type CommandRunner func(name string, args []string, stdin []byte) ([]byte, error)

// LookPathFunc resolves a command name, like exec.LookPath.
type LookPathFunc func(file string) (string, error)

// RST converts reStructuredText documents. The leading title and docinfo
// field list become metadata; docutils renders the rest.
type RST struct {
	HeaderLevel int
	command     string
	run         CommandRunner
}

// NewRST finds a docutils command or fails with MissingRendererDependencyError.
func NewRST(headerLevel int, lookPath LookPathFunc, run CommandRunner) (*RST, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if run == nil {
		run = execRunner
	}
	for _, name := range RSTCommands {
		if path, err := lookPath(name); err == nil {
			return &RST{HeaderLevel: headerLevel, command: path, run: run}, nil
		}
	}
	return nil, &errs.MissingRendererDependencyError{Backend: "reStructuredText", Hint: rstInstallHint}
}

func execRunner(name string, args []string, stdin []byte) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// Convert splits src into metadata and body and renders the body.
func (r *RST) Convert(src []byte) (*models.FrontMatter, string, error) {
	meta, body := SplitRST(string(src))

	args := []string{
		fmt.Sprintf("--initial-header-level=%d", r.HeaderLevel),
		"--no-doc-title",
		"--no-generator",
		"--no-datestamp",
		"--no-source-link",
		"--quiet",
	}
	out, err := r.run(r.command, args, []byte(body))
	if err != nil {
		return nil, "", fmt.Errorf("failed to render reStructuredText: %w", err)
	}

	content, err := extractBody(out)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read rst2html output: %w", err)
	}
	return meta, content, nil
}

var rstField = regexp.MustCompile(`^:([^:\s][^:]*):(?:\s+(.*))?$`)

const rstPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// SplitRST pulls the document title and the docinfo field list off the
// top of src. A :title: field wins over the title line.
func SplitRST(src string) (*models.FrontMatter, string) {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	meta := models.NewFrontMatter()

	i := skipBlank(lines, 0)
	title := ""
	switch {
	case i+2 < len(lines) && isAdornment(lines[i]) && isAdornment(lines[i+2]) && strings.TrimSpace(lines[i+1]) != "":
		title = strings.TrimSpace(lines[i+1])
		i += 3
	case i+1 < len(lines) && strings.TrimSpace(lines[i]) != "" && !rstField.MatchString(lines[i]) &&
		isAdornment(lines[i+1]) && len(strings.TrimSpace(lines[i+1])) >= len(strings.TrimSpace(lines[i])):
		title = strings.TrimSpace(lines[i])
		i += 2
	}

	i = skipBlank(lines, i)
	for i < len(lines) {
		m := rstField.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		key := strings.ToLower(strings.TrimSpace(m[1]))
		value := strings.TrimSpace(m[2])
		i++
		for i < len(lines) && lines[i] != "" && (lines[i][0] == ' ' || lines[i][0] == '\t') {
			value = strings.TrimSpace(value + " " + strings.TrimSpace(lines[i]))
			i++
		}
		meta.Set(key, value)
	}

	if title != "" && !meta.Has("title") {
		meta.Set("title", title)
	}

	return meta, strings.Join(lines[skipBlank(lines, i):], "\n")
}

// isAdornment reports whether line is a run of one repeated punctuation
// character, as used to underline and overline section titles.
func isAdornment(line string) bool {
	line = strings.TrimRight(line, " \t")
	if len(line) < 2 || !strings.ContainsRune(rstPunctuation, rune(line[0])) {
		return false
	}
	return strings.Count(line, line[:1]) == len(line)
}

func skipBlank(lines []string, i int) int {
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}

// extractBody returns the inner HTML of <body>, unwrapping docutils'
// <div class="document"> or <main> container.
func extractBody(doc []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return "", err
	}

	body := findElement(root, atom.Body)
	if body == nil {
		return string(doc), nil
	}

	container := body
	if only := singleElementChild(body); only != nil && (only.DataAtom == atom.Main || hasClass(only, "document")) {
		container = only
	}

	var buf bytes.Buffer
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func singleElementChild(n *html.Node) *html.Node {
	var only *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			if only != nil {
				return nil
			}
			only = c
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return nil
			}
		}
	}
	return only
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			for _, c := range strings.Fields(attr.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}
