package transport

import (
	"encoding/json"
	"net/http"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/errors"
)

type envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, envelope{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, envelope{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError translates an application error to HTTP. Upstream failures keep
// the provider's status code and payload; everything else maps through the
// error taxonomy; unknown errors become a generic 500.
func writeError(w http.ResponseWriter, err error) {
	if ue, ok := err.(errors.UpstreamError); ok {
		var details interface{}
		if json.Valid(ue.Payload) {
			details = json.RawMessage(ue.Payload)
		} else if len(ue.Payload) > 0 {
			details = string(ue.Payload)
		}
		writeJSON(w, ue.StatusCode, envelope{
			Code:    constant.ErrorTypeCode[constant.ErrUpstream],
			Message: constant.ErrorTypeMessage[constant.ErrUpstream],
			Data:    details,
		})
		return
	}
	if ce, ok := err.(errors.CustomError); ok {
		writeJSON(w, ce.ErrorHTTPCode(), envelope{
			Code:    ce.ErrorCode(),
			Message: ce.Error(),
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, envelope{
		Code:    constant.ErrorTypeCode[constant.ErrInternal],
		Message: constant.ErrorTypeMessage[constant.ErrInternal],
	})
}
