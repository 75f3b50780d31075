// Package profile loads the bot's behavior profile from a YAML file: who the
// bot is, how it greets people, and the knobs of the retrieval pipeline. One
// binary, many personas.
package profile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Profile struct {
	BotName   string `yaml:"bot_name"`
	OwnerName string `yaml:"owner_name"`
	Persona   string `yaml:"persona"`
	Greeting  string `yaml:"greeting"`

	MaxContextParagraphs int   `yaml:"max_context_paragraphs"`
	HistoryEnabled       *bool `yaml:"history_enabled"`
	HistorySize          int   `yaml:"history_size"`
	SessionTimeoutSecs   int   `yaml:"session_timeout_secs"`

	CorpusUnavailableReply string `yaml:"corpus_unavailable_reply"`
	ModelFailedReply       string `yaml:"model_failed_reply"`
	BlockedReply           string `yaml:"blocked_reply"`
}

const defaultPersona = `You are Jenny, the warm and upbeat personal assistant of Sal.
You answer questions about Sal's work, content, and services using the
reference material provided to you. You are friendly and concise, you never
invent facts, and you gently redirect off-topic questions back to what you
actually know about.`

// Default returns the built-in Jenny profile.
func Default() Profile {
	return Profile{
		BotName:              "Jenny",
		OwnerName:            "Sal",
		Persona:              defaultPersona,
		Greeting:             "Hi {name}! I'm Jenny, Sal's personal assistant. Ask me anything about Sal's work and I'll do my best to help.",
		MaxContextParagraphs: 3,
		HistorySize:          10,
		SessionTimeoutSecs:   1800,
		CorpusUnavailableReply: "Sorry, I'm having trouble reaching my notes right now. " +
			"Please try again in a moment.",
		ModelFailedReply: "Sorry, something went wrong on my end while thinking about that. " +
			"Please try again in a moment.",
		BlockedReply: "I'd rather not get into that. I'm happy to help with anything " +
			"about Sal's work, though!",
	}
}

// Load reads a profile file and fills any omitted field from the defaults. A
// missing file is not an error; the defaults are the profile.
func Load(path string) (Profile, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return Profile{}, fmt.Errorf("profile: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("profile: parse %s: %w", path, err)
	}
	p.fillDefaults()
	return p, nil
}

func (p *Profile) fillDefaults() {
	d := Default()
	if p.BotName == "" {
		p.BotName = d.BotName
	}
	if p.OwnerName == "" {
		p.OwnerName = d.OwnerName
	}
	if p.Persona == "" {
		p.Persona = d.Persona
	}
	if p.Greeting == "" {
		p.Greeting = d.Greeting
	}
	if p.MaxContextParagraphs < 1 {
		p.MaxContextParagraphs = d.MaxContextParagraphs
	}
	if p.HistorySize < 1 {
		p.HistorySize = d.HistorySize
	}
	if p.SessionTimeoutSecs < 1 {
		p.SessionTimeoutSecs = d.SessionTimeoutSecs
	}
	if p.CorpusUnavailableReply == "" {
		p.CorpusUnavailableReply = d.CorpusUnavailableReply
	}
	if p.ModelFailedReply == "" {
		p.ModelFailedReply = d.ModelFailedReply
	}
	if p.BlockedReply == "" {
		p.BlockedReply = d.BlockedReply
	}
}

func (p Profile) SessionTimeout() time.Duration {
	return time.Duration(p.SessionTimeoutSecs) * time.Second
}

// HistoryOn reports whether conversation history is included in prompts.
// Enabled unless the profile explicitly turns it off.
func (p Profile) HistoryOn() bool {
	return p.HistoryEnabled == nil || *p.HistoryEnabled
}
