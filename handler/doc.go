// Package handler turns typed request handlers into http.HandlerFuncs and
// maps every failure of the request pipeline onto one JSON error envelope.
//
// # Typed handlers
//
// A HandlerFunc receives a Context and an already-bound request value:
//
//	func create(ctx handler.Context, req signup.CreateRequest) handler.Response {
//		return handler.JSON(map[string]string{"message": "called with: " + req.Email})
//	}
//
//	r.Post("/create-validator", handler.Wrap(create,
//		handler.WithBinder[handler.Context, signup.CreateRequest](binder.JSONPath()),
//		handler.WithValidation[handler.Context, signup.CreateRequest](),
//		handler.WithErrorHandler[handler.Context, signup.CreateRequest](errorHandler),
//	))
//
// Wrap runs the binders in order, then (with WithValidation) validator.Validate
// when the request type implements validator.Record, then the handler. A
// failure at any step is passed to the ErrorHandler and stops the request.
//
// # Error envelope
//
// MapError is the single place where failures become responses:
//
//	{"message": "field errors", "errors": [{"field": "email", "field_errors": ["email: {...}"]}]}
//	{"message": "JSON path error: address.street_no: invalid type: ...", "errors": null}
//	{"message": "Not Found", "errors": null}
//	{"message": "Internal Server Error", "errors": null}
//
// NewErrorHandler writes that envelope and logs the failure with the request
// id. NotFound and MethodNotAllowed plug the same envelope into a router.
package handler
