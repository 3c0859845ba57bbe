package signup

import (
	"fmt"

	"github.com/dmitrymomot/reqvalidate/pkg/validator"
)

// CreateRequest is the body accepted by every create endpoint.
type CreateRequest struct {
	Email   string  `json:"email"`
	Address Address `json:"address"`
	Pets    []Pet   `json:"pets"`
}

type Address struct {
	Street   string `json:"street"`
	StreetNo uint   `json:"street_no"`
}

type Pet struct {
	Name string `json:"name"`
}

func (r CreateRequest) Rules() validator.Fields {
	return validator.Fields{
		validator.Field("email", validator.Email(r.Email)),
		validator.Nested("address", r.Address),
		validator.Each("pets", r.Pets),
	}
}

func (a Address) Rules() validator.Fields {
	return validator.Fields{
		validator.Field("street", validator.Length(a.Street, 2, 10)),
		validator.Field("street_no", validator.Range(a.StreetNo, 1)),
	}
}

func (p Pet) Rules() validator.Fields {
	return validator.Fields{
		validator.Field("name", validator.Length(p.Name, 3, 20)),
	}
}

// String renders the request as CreateRequest{Email:... Address:{...} Pets:[...]}.
func (r CreateRequest) String() string {
	type plain CreateRequest
	return fmt.Sprintf("CreateRequest%+v", plain(r))
}
