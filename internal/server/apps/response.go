package apps

import (
	"fmt"
	"net/http"
)

// Response is a fully materialized HTTP response. Apps build one from a
// request; Send writes it out.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

// Send writes the response to w. A zero Status is sent as 200.
func (r Response) Send(w http.ResponseWriter) error {
	if r.ContentType != "" {
		w.Header().Set("Content-Type", r.ContentType)
	}

	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if _, err := w.Write([]byte(r.Body)); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
