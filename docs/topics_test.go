package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// parse returns the markdown AST of a topic alongside its source bytes.
func parse(t *testing.T, topic string) (ast.Node, []byte) {
	t.Helper()
	content, err := GetTopic(topic)
	if err != nil {
		t.Fatalf("cannot read topic %q: %v", topic, err)
	}
	source := []byte(content)
	return goldmark.DefaultParser().Parse(text.NewReader(source)), source
}

// TestTopicsAreLinkedFromReadme keeps the readme in sync with the topic
// files: every topic must be linked, and every link must resolve.
func TestTopicsAreLinkedFromReadme(t *testing.T) {
	root, _ := parse(t, "readme")

	linked := map[string]bool{}
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if link, ok := n.(*ast.Link); ok && entering {
			dest := string(link.Destination)
			if strings.HasSuffix(dest, ".md") {
				linked[strings.TrimSuffix(dest, ".md")] = true
			}
		}
		return ast.WalkContinue, nil
	})

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range topics {
		if !linked[topic] {
			t.Errorf("topic %q is not linked from the readme", topic)
		}
	}
	for dest := range linked {
		if _, err := GetTopic(dest); err != nil {
			t.Errorf("readme links to missing topic %q: %v", dest, err)
		}
	}
}

// TestTopicsHaveTitle checks that each topic opens with a level-1 heading,
// so concatenated topics stay readable.
func TestTopicsHaveTitle(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	topics = append(topics, "readme")

	for _, topic := range topics {
		root, source := parse(t, topic)
		first := root.FirstChild()
		heading, ok := first.(*ast.Heading)
		if !ok || heading.Level != 1 {
			t.Errorf("topic %q does not start with a level-1 heading", topic)
			continue
		}
		if strings.TrimSpace(string(heading.Text(source))) == "" {
			t.Errorf("topic %q has an empty title", topic)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}

func TestGetTopics_Star(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Stock movements", "# Backup and restore"} {
		if !strings.Contains(all, want) {
			t.Errorf("star expansion misses %q", want)
		}
	}
}
