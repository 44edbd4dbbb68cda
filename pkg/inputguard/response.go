package inputguard

import (
	"encoding/json"
	"net/http"
)

type rejectionBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func writeRejection(w http.ResponseWriter, rej *Rejection) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(rej.Status)
	_ = json.NewEncoder(w).Encode(rejectionBody{Message: rej.Message, Code: rej.Code})
}
