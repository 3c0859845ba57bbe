package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqvalidate/pkg/validator"
)

type tag struct {
	Label string
}

func (t tag) Rules() validator.Fields {
	return validator.Fields{
		validator.Field("label", validator.Length(t.Label, 1, 5)),
	}
}

type owner struct {
	Email string
	Age   int
}

func (o owner) Rules() validator.Fields {
	return validator.Fields{
		validator.Field("email", validator.Email(o.Email)),
		validator.Field("age", validator.Range(o.Age, 18, 130)),
	}
}

type listing struct {
	Title  string
	Owner  *owner
	Tags   []tag
	Photos []photo
}

type photo struct {
	URL  string
	Tags []tag
}

func (p photo) Rules() validator.Fields {
	return validator.Fields{
		validator.Field("url", validator.Length(p.URL, 8, 200)),
		validator.Each("tags", p.Tags),
	}
}

func (l listing) Rules() validator.Fields {
	return validator.Fields{
		validator.Field("title", validator.Length(l.Title, 3, 50)),
		validator.Nested("owner", l.Owner),
		validator.Each("tags", l.Tags),
		validator.Each("photos", l.Photos),
	}
}

func TestValidate_DeepStructures(t *testing.T) {
	t.Parallel()

	t.Run("valid deep record", func(t *testing.T) {
		t.Parallel()
		rec := listing{
			Title:  "Flat",
			Owner:  &owner{Email: "o@example.com", Age: 40},
			Tags:   []tag{{Label: "new"}},
			Photos: []photo{{URL: "https://img", Tags: []tag{{Label: "a"}}}},
		}
		assert.NoError(t, validator.Validate(rec))
	})

	t.Run("optional nested pointer may be nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Validate(listing{Title: "Flat"}))
	})

	t.Run("lists inside list elements", func(t *testing.T) {
		t.Parallel()
		rec := listing{
			Title: "Fl",
			Owner: &owner{Email: "bad", Age: 12},
			Tags:  []tag{{Label: "ok"}, {Label: ""}},
			Photos: []photo{
				{URL: "https://img", Tags: []tag{{Label: "fine"}}},
				{URL: "x", Tags: []tag{{Label: "toolong"}, {Label: "ok"}, {Label: ""}}},
			},
		}

		root := validator.ExtractValidationErrors(validator.Validate(rec))
		require.NotNil(t, root)
		assert.Equal(t, []string{
			"title",
			"owner.email",
			"owner.age",
			"tags[1].label",
			"photos[1].url",
			"photos[1].tags[0].label",
			"photos[1].tags[2].label",
		}, root.Paths())
	})

	t.Run("repeated validation yields the same tree", func(t *testing.T) {
		t.Parallel()
		rec := listing{Title: "", Tags: []tag{{Label: ""}}}

		first := validator.ExtractValidationErrors(validator.Validate(rec))
		second := validator.ExtractValidationErrors(validator.Validate(rec))
		require.NotNil(t, first)
		assert.Equal(t, first, second)
	})
}
