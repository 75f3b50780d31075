// Package gateway orchestrates one inbound Telegram update through the whole
// pipeline: session bookkeeping, corpus retrieval, prompt assembly, the model
// call, history recording, and the outbound send.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jennylabs/jenny/internal/connectors/telegram"
	"github.com/jennylabs/jenny/internal/links"
	"github.com/jennylabs/jenny/internal/llm"
	"github.com/jennylabs/jenny/internal/prompt"
	"github.com/jennylabs/jenny/internal/rank"
	"github.com/jennylabs/jenny/internal/session"
)

// Sender delivers a reply to a chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// CorpusSource supplies the reference text the ranker selects from.
type CorpusSource interface {
	Text() (string, error)
}

type Config struct {
	Greeting string
	Persona  string

	MaxContextParagraphs int
	HistoryEnabled       bool

	CorpusUnavailableReply string
	ModelFailedReply       string
	BlockedReply           string
}

type Service struct {
	cfg       Config
	corpus    CorpusSource
	sessions  *session.Store
	responder llm.Responder
	sender    Sender
	logger    *slog.Logger
}

func New(cfg Config, corpus CorpusSource, sessions *session.Store, responder llm.Responder, sender Sender, logger *slog.Logger) *Service {
	if cfg.MaxContextParagraphs < 1 {
		cfg.MaxContextParagraphs = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg,
		corpus:    corpus,
		sessions:  sessions,
		responder: responder,
		sender:    sender,
		logger:    logger.With("component", "gateway"),
	}
}

// HandleUpdate runs one update through the pipeline. Anything short of a
// malformed envelope is absorbed: retrieval and model failures become
// apologetic replies, send failures are logged, and the webhook still
// acknowledges. The returned error is reserved for failures the HTTP layer
// should surface.
func (s *Service) HandleUpdate(ctx context.Context, update telegram.Update) error {
	msg := update.Message
	if msg == nil || msg.Chat.ID == 0 || strings.TrimSpace(msg.Text) == "" {
		s.logger.Debug("ignoring update without chat text", "update_id", update.UpdateID)
		return nil
	}

	chatID := msg.Chat.ID
	question := strings.TrimSpace(msg.Text)
	logger := s.logger.With("request_id", uuid.NewString(), "chat_id", chatID)

	key := strconv.FormatInt(chatID, 10)
	s.sessions.Touch(key, telegram.UserDisplayName(msg.From))
	name, _ := s.sessions.Name(key)

	if strings.HasPrefix(question, "/start") {
		greeting := strings.ReplaceAll(s.cfg.Greeting, "{name}", name)
		logger.Info("greeting new chat")
		s.send(ctx, logger, chatID, greeting)
		return nil
	}

	reply := s.answer(ctx, logger, key, name, question)
	s.send(ctx, logger, chatID, reply)
	return nil
}

// answer produces the reply text for a question. Every failure path returns a
// user-facing apology rather than an error. The user turn is recorded for
// every question that enters the pipeline, whichever way it fails; the
// assistant turn only when the model succeeds.
func (s *Service) answer(ctx context.Context, logger *slog.Logger, key, name, question string) string {
	corpusText, err := s.corpus.Text()
	if err != nil {
		logger.Error("corpus load failed", "error", err)
		s.sessions.AppendTurn(key, session.RoleUser, question)
		return s.cfg.CorpusUnavailableReply
	}

	paragraphs := rank.Rank(corpusText, question, s.cfg.MaxContextParagraphs)
	videoLinks := links.Extract(strings.Join(paragraphs, "\n\n"))

	var history []session.Turn
	if s.cfg.HistoryEnabled {
		history = s.sessions.History(key)
	}

	p := prompt.Build(prompt.Input{
		Persona:     s.cfg.Persona,
		DisplayName: name,
		Context:     paragraphs,
		Links:       videoLinks,
		History:     history,
		Question:    question,
	})

	answer, err := s.invokeModel(ctx, p)

	s.sessions.AppendTurn(key, session.RoleUser, question)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrBlocked):
			logger.Warn("model output blocked")
			return s.cfg.BlockedReply
		default:
			logger.Error("model call failed", "error", err)
			return s.cfg.ModelFailedReply
		}
	}
	s.sessions.AppendTurn(key, session.RoleAssistant, answer)
	logger.Info("reply ready", "context_paragraphs", len(paragraphs), "links", len(videoLinks))
	return answer
}

func (s *Service) invokeModel(ctx context.Context, p string) (string, error) {
	if s.responder == nil {
		return "", llm.ErrUnavailable
	}
	return s.responder.Reply(ctx, p)
}

// send logs outbound failures instead of propagating them; Telegram retries
// webhooks on non-200 and a redelivered update would double-answer the user.
func (s *Service) send(ctx context.Context, logger *slog.Logger, chatID int64, text string) {
	if err := s.sender.SendMessage(ctx, chatID, text); err != nil {
		logger.Error("send failed", "error", err)
	}
}
