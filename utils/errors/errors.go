package errors

import (
	"encoding/json"
	"fmt"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
)

type CustomError struct {
	errType constant.ErrorType
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// UpstreamError carries the messaging provider's HTTP status and raw payload
// so handlers can pass both through to the caller unchanged.
type UpstreamError struct {
	StatusCode int
	Payload    json.RawMessage
}

func (u UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", u.StatusCode)
}

func SetUpstreamError(statusCode int, payload []byte) UpstreamError {
	return UpstreamError{
		StatusCode: statusCode,
		Payload:    payload,
	}
}
