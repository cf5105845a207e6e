package proto

import "fmt"

// StatusSuccess is the code returned for an accepted submission.
const StatusSuccess = "success"

// LiveStateResponse is the body of GET /get_message.
type LiveStateResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// SendResponse is the body of POST /send_message on success.
type SendResponse struct {
	Code string `json:"code"`
}

// HistoryResponse is the body of GET /show_history. Msg is ordered most
// recent first.
type HistoryResponse struct {
	Msg []string `json:"msg"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// FormatMessage renders the display convention for a submission: a sender
// label joined to the message body. The server stores the formatted string
// verbatim in both live state and history.
func FormatMessage(label, body string) string {
	return fmt.Sprintf("%s: %s", label, body)
}
