package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/forgo/hangs/internal/model"
)

// MaxBodyBytes caps the request bodies read by RemoveBlanks
const MaxBodyBytes = 1 << 20

// RemoveBlanks drops empty-string fields from the top-level "hang" object of a
// JSON body. The downstream handler receives a clone of the request carrying
// the rewritten body; bodies without a "hang" object are forwarded as sent.
func RemoveBlanks(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if err != nil {
			model.NewBadRequestError("request body could not be read").WriteJSON(w)
			return
		}

		body := raw
		if stripped, ok := stripBlankHangFields(raw); ok {
			body = stripped
		}

		clone := r.Clone(r.Context())
		clone.Body = io.NopCloser(bytes.NewReader(body))
		clone.ContentLength = int64(len(body))

		next.ServeHTTP(w, clone)
	})
}

func stripBlankHangFields(raw []byte) ([]byte, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var envelope map[string]interface{}
	if err := dec.Decode(&envelope); err != nil {
		return nil, false
	}

	hang, ok := envelope["hang"].(map[string]interface{})
	if !ok {
		return nil, false
	}
	envelope["hang"] = model.Fields(hang).WithoutBlanks()

	out, err := json.Marshal(envelope)
	if err != nil {
		return nil, false
	}
	return out, true
}
