package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"orderview/internal/service"
)

type rejection struct {
	Detail struct {
		Message string `json:"message"`
	} `json:"detail"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

type unprocessable struct {
	Detail []validationIssue `json:"detail"`
}

func PriceHandler(pricing *service.PricingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req service.PriceRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
			writeUnprocessable(w, "invalid json")
			return
		}

		if err := pricing.Validate(req); err != nil {
			if errors.Is(err, service.ErrInvalidPriceRequest) {
				writeUnprocessable(w, err.Error())
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Only limit overruns remain after validation.
		quote := pricing.Quote(req)
		if !quote.Allowed {
			var rej rejection
			rej.Detail.Message = quote.Message
			writeJSON(w, http.StatusBadRequest, rej)
			return
		}

		writeJSON(w, http.StatusOK, quote)
	}
}

func writeUnprocessable(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusUnprocessableEntity, unprocessable{Detail: []validationIssue{{Msg: msg}}})
}
