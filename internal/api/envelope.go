// Package api defines the wire types exchanged with the RAGFlow-compatible
// ingestion service. Every endpoint speaks a common JSON envelope; the typed
// payloads in this package are decoded out of that envelope at the HTTP
// boundary so the rest of the application never handles loose maps.
package api

import "encoding/json"

// Envelope is the standard response wrapper used by every service endpoint.
// A zero Code means the operation succeeded and Data carries the payload;
// any other Code is a service-level failure described by Message, regardless
// of the HTTP status the exchange carried.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// OK returns true if the envelope reports success.
func (e *Envelope) OK() bool {
	return e.Code == 0
}

// DecodeData unmarshals the envelope payload into v. Absent or null payloads
// leave v untouched.
func (e *Envelope) DecodeData(v any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}
