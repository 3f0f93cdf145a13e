package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/logging"
	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/transcript"
)

type ConvertHandler struct {
	defaultFPS float64
	logger     *logging.Logger
}

func NewConvertHandler(defaultFPS float64, logger *logging.Logger) *ConvertHandler {
	return &ConvertHandler{defaultFPS: defaultFPS, logger: logger}
}

type convertRequest struct {
	Text string  `json:"text"`
	FPS  float64 `json:"fps,omitempty"`
}

type convertResponse struct {
	SRT string  `json:"srt"`
	FPS float64 `json:"fps"`
}

// Convert accepts a transcript and a frame rate and returns the rendered SRT
// document. An omitted fps falls back to the configured default.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	fps := req.FPS
	if fps == 0 {
		fps = h.defaultFPS
	}

	doc, err := transcript.Convert(req.Text, fps)
	if err != nil {
		h.logger.Debugw("conversion failed", "error", err)
		convertError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{SRT: doc, FPS: fps})
}

// convertError maps the parser's error taxonomy onto a structured 400
// response so a caller can distinguish the cases without string matching.
func convertError(w http.ResponseWriter, err error) {
	body := map[string]any{"error": err.Error()}

	var malformed *transcript.MalformedTimecodeError
	switch {
	case errors.Is(err, transcript.ErrEmptyInput):
		body["kind"] = "empty_input"
	case errors.Is(err, transcript.ErrNoTimecodes):
		body["kind"] = "no_timecodes_found"
	case errors.As(err, &malformed):
		body["kind"] = "malformed_timecode"
		body["line"] = malformed.Line
	default:
		body["kind"] = "invalid_request"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(body)
}
