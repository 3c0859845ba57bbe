// Package validator applies declarative, per-field validation rules to
// decoded request records and reports failures as a sparse tree that mirrors
// the record's shape.
//
// A record declares its rules by implementing Record. The rule table is an
// ordered list of rows built with Field, Nested and Each; the same order is
// used when failures are reported, so output never depends on map iteration.
//
//	type Pet struct{ Name string }
//
//	func (p Pet) Rules() validator.Fields {
//	    return validator.Fields{
//	        validator.Field("name", validator.Length(p.Name, 3, 20)),
//	    }
//	}
//
//	type CreateRequest struct {
//	    Email   string
//	    Address Address
//	    Pets    []Pet
//	}
//
//	func (r CreateRequest) Rules() validator.Fields {
//	    return validator.Fields{
//	        validator.Field("email", validator.Email(r.Email)),
//	        validator.Nested("address", r.Address),
//	        validator.Each("pets", r.Pets),
//	    }
//	}
//
// # Rules
//
// Every rule is a Rule value: a Check func bound to the field value plus the
// Violation reported when the check fails. The available rules are:
//
//   - Email(value)               – code "email"
//   - Length(value, min, max)    – code "length", counts code points
//   - Range(value, min[, max])   – code "range", max is optional
//
// Rules on one field are never short-circuited: every failing rule is
// reported, in declaration order.
//
// # Result Tree
//
// Validate returns nil when the record is valid. Otherwise it returns a
// *StructNode, which implements error. The tree has three node kinds:
//
//   - *FieldNode  – violations of one scalar field
//   - *StructNode – failing fields of a (nested) record
//   - *ListNode   – failing elements of a list, keyed by index
//
// Only failing branches are present; empty nodes are never produced.
// Leaves and Paths give path-addressed access, e.g. "pets[0].name".
//
// # Concurrency
//
// Validation is a pure function of the record's values. The go-playground
// instance behind Email is created once and shared read-only.
package validator
