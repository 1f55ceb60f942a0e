package kit

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the wire shape every failed request gets back. Fields names
// the offending input location: "query", "path" or "POST body".
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Fields  string `json:"fields"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message, fields string) {
	WriteJSON(w, status, ErrorBody{
		Code:    status,
		Message: message,
		Fields:  fields,
	})
}
