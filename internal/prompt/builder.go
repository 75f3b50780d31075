// Package prompt assembles the model prompt from persona, retrieved context,
// links, history, and the question. Assembly is pure string work and fully
// deterministic: the same input always yields the same prompt.
package prompt

import (
	"strings"

	"github.com/jennylabs/jenny/internal/session"
)

// Input carries everything the builder needs for one prompt.
type Input struct {
	Persona     string
	DisplayName string
	Context     []string
	Links       []string
	History     []session.Turn
	Question    string
}

const emptyContextNote = "No relevant context found."

// Build renders the prompt sections in a fixed order: identity framing,
// persona, context block, optional links block, optional history block, the
// question, and a closing instruction. Empty context gets an explicit
// placeholder so the model knows retrieval came up dry; empty links and
// history sections are omitted entirely.
func Build(in Input) string {
	name := in.DisplayName
	if name == "" {
		name = session.PlaceholderName
	}

	var b strings.Builder
	b.WriteString("You are talking to " + name + ".\n\n")
	if p := strings.TrimSpace(in.Persona); p != "" {
		b.WriteString(p + "\n\n")
	}

	b.WriteString("--- CONTEXT ---\n")
	if len(in.Context) == 0 {
		b.WriteString(emptyContextNote + "\n")
	} else {
		b.WriteString(strings.Join(in.Context, "\n\n") + "\n")
	}
	b.WriteString("--- END CONTEXT ---\n\n")

	if len(in.Links) > 0 {
		b.WriteString("Relevant videos you may share (pick at most one, only if it truly helps):\n")
		for _, link := range in.Links {
			b.WriteString("- " + link + "\n")
		}
		b.WriteString("\n")
	}

	if len(in.History) > 0 {
		b.WriteString("--- CONVERSATION SO FAR ---\n")
		for _, turn := range in.History {
			label := "User"
			if turn.Role == session.RoleAssistant {
				label = "Assistant"
			}
			b.WriteString(label + ": " + turn.Text + "\n")
		}
		b.WriteString("--- END CONVERSATION ---\n\n")
	}

	b.WriteString("Question: " + in.Question + "\n\n")
	b.WriteString("Answer in Jenny's voice, using only the context above. " +
		"Stay on topic; if the context does not cover the question, say so briefly. " +
		"Include at most one link, and only if it was listed above.")
	return b.String()
}
