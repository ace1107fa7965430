// Package shared holds the response envelope, request decoding, and trace ID
// helpers used by both the handlers and the middleware.
package shared
