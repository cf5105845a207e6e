package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akulinin/duochat/internal/store"
)

// Exchange implements the message synchronization operations over the live
// slot and the message log. It owns the live slot; the log is injected.
type Exchange struct {
	live   *Live
	log    store.MessageLog
	roster Roster
	logger *zerolog.Logger
}

// NewExchange constructs the exchange service.
func NewExchange(messageLog store.MessageLog, roster Roster, logger *zerolog.Logger) *Exchange {
	return &Exchange{
		live:   NewLive(),
		log:    messageLog,
		roster: roster,
		logger: logger,
	}
}

// LiveState returns the current live message and speaker.
func (e *Exchange) LiveState() (string, SpeakerID) {
	return e.live.Read()
}

// History returns every logged message text, most recent first.
func (e *Exchange) History(ctx context.Context) ([]string, error) {
	history, err := e.log.ListHistory(ctx)
	if err != nil {
		return nil, coreError(ErrCodeStorage, "failed to read history", err)
	}
	return history, nil
}

// Submit validates and records a display-formatted message.
//
// The order is validate, persist, then update live state. The live slot is
// only written after the log append succeeds, so a reader never observes
// live state that has no durable backing. A failed submission leaves both
// the log and the live slot untouched.
func (e *Exchange) Submit(ctx context.Context, text string, speaker SpeakerID) error {
	if strings.TrimSpace(text) == "" {
		return coreError(ErrCodeBadRequest, "message is required", ErrEmptyMessage)
	}
	if !e.roster.Contains(speaker) {
		return coreError(ErrCodeUnknownSpeaker, "unknown speaker id", ErrUnknownSpeaker)
	}

	id, err := e.log.AppendMessage(ctx, text)
	if err != nil {
		return coreError(ErrCodeStorage, "failed to store message", err)
	}

	e.live.Write(text, speaker)

	e.logger.Debug().
		Int64("message_id", id).
		Int("speaker", int(speaker)).
		Msg("message submitted")
	return nil
}
