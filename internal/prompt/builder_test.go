package prompt

import (
	"strings"
	"testing"

	"github.com/jennylabs/jenny/internal/session"
)

func TestBuildSectionOrder(t *testing.T) {
	got := Build(Input{
		Persona:     "You are Jenny.",
		DisplayName: "Alex",
		Context:     []string{"first paragraph", "second paragraph"},
		Links:       []string{"https://www.youtube.com/watch?v=abc123"},
		History: []session.Turn{
			{Role: session.RoleUser, Text: "hi"},
			{Role: session.RoleAssistant, Text: "hello!"},
		},
		Question: "what do you offer?",
	})

	markers := []string{
		"You are talking to Alex.",
		"You are Jenny.",
		"--- CONTEXT ---",
		"first paragraph",
		"second paragraph",
		"--- END CONTEXT ---",
		"https://www.youtube.com/watch?v=abc123",
		"--- CONVERSATION SO FAR ---",
		"User: hi",
		"Assistant: hello!",
		"--- END CONVERSATION ---",
		"Question: what do you offer?",
		"at most one link",
	}
	pos := -1
	for _, marker := range markers {
		idx := strings.Index(got, marker)
		if idx < 0 {
			t.Fatalf("prompt missing %q:\n%s", marker, got)
		}
		if idx <= pos {
			t.Fatalf("section %q out of order:\n%s", marker, got)
		}
		pos = idx
	}
}

func TestBuildEmptyContextPlaceholder(t *testing.T) {
	got := Build(Input{Question: "anything"})
	if !strings.Contains(got, "No relevant context found.") {
		t.Fatalf("expected empty-context placeholder:\n%s", got)
	}
}

func TestBuildOmitsEmptySections(t *testing.T) {
	got := Build(Input{Question: "anything", Context: []string{"p"}})
	if strings.Contains(got, "Relevant videos") {
		t.Fatalf("links section should be omitted when empty:\n%s", got)
	}
	if strings.Contains(got, "CONVERSATION SO FAR") {
		t.Fatalf("history section should be omitted when empty:\n%s", got)
	}
}

func TestBuildMissingNameFallsBack(t *testing.T) {
	got := Build(Input{Question: "anything"})
	if !strings.Contains(got, "You are talking to "+session.PlaceholderName+".") {
		t.Fatalf("expected placeholder name framing:\n%s", got)
	}
}

func TestBuildDeterministic(t *testing.T) {
	in := Input{
		Persona:  "You are Jenny.",
		Context:  []string{"a", "b"},
		Question: "q",
	}
	first := Build(in)
	for i := 0; i < 3; i++ {
		if Build(in) != first {
			t.Fatal("prompt assembly is not deterministic")
		}
	}
}
