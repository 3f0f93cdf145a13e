package handlers

import (
	"net/http"

	"github.com/dominiqueramirez/timecode-to-srt-converter/internal/timecode"
)

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Rates lists the frame rates the standard selector offers. Any positive
// rate is accepted by the converter; this is the recognized discrete set.
func Rates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]float64{"rates": timecode.StandardRates})
}
