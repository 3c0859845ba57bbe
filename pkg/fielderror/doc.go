// Package fielderror flattens decode failures and validation trees into the
// ordered list of field-level errors returned to API clients.
//
// Each FieldError pairs a path ("email", "address.street_no",
// "pets[0].name") with the messages reported for it:
//
//	[
//	  {"field": "email", "field_errors": ["email: {\"value\":\"x\"}"]},
//	  {"field": "pets[0]", "field_errors": ["name: errors: length: {...}"]},
//	  {"field": "pets[0].name", "field_errors": ["length: {...}"]}
//	]
//
// A *binder.DecodeError becomes exactly one entry carrying the decode message.
// A validation tree is walked depth-first in field declaration order. List
// elements with nested structure first produce a summary entry keyed by the
// element path, then their expanded entries; WithoutListSummaries drops the
// summaries.
//
// With summaries on, a single violation below a list element is reported
// twice: once in the element summary and once under its own path. Callers
// that need exactly one FieldError per failing field pass
// WithoutListSummaries; every entry is then a leaf path.
//
// The output is a pure function of its input: flattening the same tree twice
// yields identical results.
package fielderror
