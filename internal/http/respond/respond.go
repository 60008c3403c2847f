package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the minimal response shape shared by every endpoint: a success
// flag and, for failures and plain acknowledgements, a message.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// JSON writes payload as-is. Handlers returning data embed the success flag
// in their own response types.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}

// Message writes a successful acknowledgement.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: true, Message: message})
}

// Error writes a failure with a client-safe message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Message: message})
}
