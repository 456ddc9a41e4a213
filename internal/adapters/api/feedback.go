package api

import (
	"encoding/json"
	"errors"
)

// GenericErrorMessage is shown when a request failed before the server
// could answer (DNS, timeout, connection refused)
const GenericErrorMessage = "Something went wrong!"

// Feedback extracts the displayable payload for a failed request: the
// server's error body verbatim for non-2xx responses, the generic
// message for transport-level failures.
func Feedback(err error) json.RawMessage {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && len(reqErr.Payload) > 0 {
		return reqErr.Payload
	}

	msg, _ := json.Marshal(GenericErrorMessage)
	return msg
}
