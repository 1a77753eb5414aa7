package controllers

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/courseplan/courseplan/internal/app/models/dto"
	"github.com/courseplan/courseplan/internal/middleware"
	"github.com/courseplan/courseplan/internal/pkg/apperrors"
)

// RelayConfig holds the relay target and the server-held credential.
type RelayConfig struct {
	// UpstreamURL is the chat-completion endpoint requests are
	// forwarded to.
	UpstreamURL string

	// APIKey is attached to forwarded requests as a bearer token. An
	// empty key makes every relay request fail with 500: there is no
	// safe fallback for an unauthenticated upstream call.
	APIKey string

	// Timeout bounds the upstream round trip.
	Timeout time.Duration
}

// RelayController forwards chat-completion requests to the upstream
// API with the server-held credential attached, so the browser
// frontend never sees the key. It mirrors the upstream status and body
// back to the caller unmodified.
type RelayController struct {
	cfg    RelayConfig
	client *http.Client
	logger zerolog.Logger
}

// NewRelayController creates a new RelayController
func NewRelayController(cfg RelayConfig, logger zerolog.Logger) *RelayController {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &RelayController{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Forward relays a chat-completion request upstream
// @Summary Relay a chat-completion request
// @Description Accepts only POST. Forwards the JSON body unmodified to the upstream chat-completion endpoint with the server credential as a bearer token and mirrors the upstream status and body.
// @Tags relay
// @Accept json
// @Produce json
// @Failure 405 {object} dto.ErrorResponse "Method not allowed"
// @Failure 500 {object} dto.ErrorResponse "Missing credential or upstream unreachable"
// @Router /api/deepseek/v1/chat/completions [post]
func (c *RelayController) Forward(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodPost {
		ctx.Header("Allow", http.MethodPost)
		ctx.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Method "+ctx.Request.Method+" Not Allowed"),
		))
		return
	}

	if c.cfg.APIKey == "" {
		c.logger.Error().Msg("Relay credential not configured")
		middleware.HandleAPIError(ctx, apperrors.ErrRelayNotConfigured)
		return
	}

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unreadable request body"),
		))
		return
	}

	req, err := http.NewRequestWithContext(
		ctx.Request.Context(),
		http.MethodPost,
		c.cfg.UpstreamURL,
		bytes.NewReader(body),
	)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build upstream request")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal Server Error proxying request."),
		))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("upstream", c.cfg.UpstreamURL).Msg("Upstream request failed")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal Server Error proxying request."),
		))
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to read upstream response")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal Server Error proxying request."),
		))
		return
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("Upstream returned non-success status")
	}

	// Mirror upstream status and body, success and failure alike.
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	ctx.Data(resp.StatusCode, contentType, respBody)
}
