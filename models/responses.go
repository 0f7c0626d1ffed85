package models

// Envelope is the uniform response wrapper returned by every endpoint.
//
// On success Error is nil; on failure Success is false, Message carries a
// human-readable reason and Error the HTTP status text.
type Envelope struct {
	StatusCode int     `json:"statusCode"`
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	Data       any     `json:"data"`
	Error      *string `json:"error"`
}
