package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics keeps readme.md and the topic files in sync: every topic
// listed in the readme must load, and every topic file must be listed.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		name := strings.TrimSuffix(filepath.Base(f), ".md")
		if name == "readme" {
			continue
		}
		if !slices.Contains(topicsInReadme, name) {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

// TestTopicsStartWithHeading parses every topic and checks it opens
// with a level-one heading, so the glamour rendering has a title.
func TestTopicsStartWithHeading(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	parser := goldmark.DefaultParser()
	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := parser.Parse(text.NewReader(source))
			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading, got %T", topic, first)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q starts with a level %d heading, want 1", topic, heading.Level)
			}
		})
	}
}

func TestGetTopicStar(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Dates", "# Cash", "# Prices"} {
		if !strings.Contains(all, want) {
			t.Errorf("expanded topics missing %q", want)
		}
	}
	if _, err := GetTopic("nope"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}
