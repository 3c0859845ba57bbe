package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Param is a named rule parameter.
type Param struct {
	Key   string
	Value any
}

// Params keeps rule parameters in the order the rule declared them, so their
// rendering is stable.
type Params []Param

// String renders the params as a compact JSON object in declaration order,
// e.g. {"min":2,"max":10,"value":"A"}.
func (p Params) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, param := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(param.Key))
		b.WriteByte(':')
		b.Write(encodeParam(param.Value))
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON keeps declaration order on the wire as well.
func (p Params) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func encodeParam(v any) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		return []byte(strconv.Quote(fmt.Sprint(v)))
	}
	return raw
}
