// Package requestid correlates log records and error responses with the
// request that caused them.
//
// The middleware accepts an incoming X-Request-ID when it is well formed,
// otherwise it generates a UUID. The id is echoed in the response and stored
// in the request context, where FromContext and LogExtractor read it.
package requestid
