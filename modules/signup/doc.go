// Package signup is the HTTP surface of the request validation pipeline: a
// CreateRequest record with its rule table and the three create endpoints
// that exercise decoding and validation on it.
//
// Request shape and rules:
//
//	email               valid email address
//	address.street      2 to 10 characters
//	address.street_no   at least 1
//	pets[i].name        3 to 20 characters
//
// A valid body is answered with 200 and {"data":{"message":"called with: ..."}}.
// Every failure uses the handler package's error envelope.
package signup
