package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akulinin/duochat/internal/core"
	"github.com/akulinin/duochat/internal/proto"
)

// Handlers provides HTTP handlers for the synchronization endpoint.
type Handlers struct {
	exchange *core.Exchange
	roster   core.Roster
	log      *zerolog.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(exchange *core.Exchange, roster core.Roster, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		exchange: exchange,
		roster:   roster,
		log:      logger,
	}
}

// Health reports server liveness. Clients probe it once at startup.
// GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GetMessage returns the current live message and speaker.
// GET /get_message
func (h *Handlers) GetMessage(c *gin.Context) {
	text, speaker := h.exchange.LiveState()
	c.JSON(http.StatusOK, proto.LiveStateResponse{
		Message: text,
		ID:      int(speaker),
	})
}

// SendMessage records a submission: validate, append to the log, then
// overwrite live state.
// POST /send_message with query or form params `message` and `char_id`.
func (h *Handlers) SendMessage(c *gin.Context) {
	message := c.Query("message")
	if message == "" {
		message = c.PostForm("message")
	}
	rawID := c.Query("char_id")
	if rawID == "" {
		rawID = c.PostForm("char_id")
	}

	if rawID == "" {
		c.JSON(http.StatusBadRequest, proto.Error{Code: core.ErrCodeBadRequest, Msg: "char_id is required"})
		return
	}
	speaker, err := h.roster.ParseSpeakerID(rawID)
	if err != nil {
		h.log.Debug().Str("char_id", rawID).Msg("rejected unknown speaker id")
		c.JSON(http.StatusBadRequest, proto.Error{Code: core.ErrCodeUnknownSpeaker, Msg: "unknown speaker id"})
		return
	}

	if err := h.exchange.Submit(c.Request.Context(), message, speaker); err != nil {
		status, body := errorResponse(err)
		if status == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("failed to submit message")
		} else {
			h.log.Debug().Err(err).Msg("rejected submission")
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, proto.SendResponse{Code: proto.StatusSuccess})
}

// ShowHistory returns the full message log, most recent first.
// GET /show_history
func (h *Handlers) ShowHistory(c *gin.Context) {
	history, err := h.exchange.History(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read history")
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, proto.HistoryResponse{Msg: history})
}

// errorResponse maps a core error to an HTTP status and wire body.
func errorResponse(err error) (int, proto.Error) {
	var coreErr *core.CoreError
	if errors.As(err, &coreErr) {
		switch coreErr.Code {
		case core.ErrCodeBadRequest, core.ErrCodeUnknownSpeaker:
			return http.StatusBadRequest, proto.Error{Code: coreErr.Code, Msg: coreErr.Message}
		case core.ErrCodeStorage:
			return http.StatusInternalServerError, proto.Error{Code: coreErr.Code, Msg: coreErr.Message}
		}
	}
	return http.StatusInternalServerError, proto.Error{Code: core.ErrCodeStorage, Msg: "internal server error"}
}
