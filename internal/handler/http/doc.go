// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authentication, request tracing, access logging and security headers
// are handled in this package before requests are delegated to the service
// layer. Every response is written as a models.Envelope.
package http
