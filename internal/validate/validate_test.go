package validate

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

type testRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func (r testRequest) ValidationRules() []ValidationRule {
	return []ValidationRule{
		Required("nome", r.Nome),
		Email("email", r.Email),
		String("token", r.Token, 64, 64, HexLower...),
	}
}

func TestValidate(t *testing.T) {
	t.Run("all rules pass", func(t *testing.T) {
		err := Validate(testRequest{Nome: "Maria", Email: "maria@example.com"})
		assert.NilError(t, err)
	})

	t.Run("failures grouped by field", func(t *testing.T) {
		err := Validate(testRequest{Email: "nope", Token: "xyz"})
		assert.ErrorContains(t, err, "validation failed")

		var fieldErr Error
		assert.Assert(t, errors.As(err, &fieldErr), "expected a validation error, got %v", err)
		assert.Equal(t, len(fieldErr["nome"]), 1)
		assert.Equal(t, len(fieldErr["email"]), 1)
		// too short and an out-of-range character
		assert.Equal(t, len(fieldErr["token"]), 2)
	})

	t.Run("empty optional values are not validated", func(t *testing.T) {
		err := Validate(testRequest{Nome: "Maria"})
		assert.NilError(t, err)
	})
}

func TestStringRule(t *testing.T) {
	assert.Assert(t, String("f", "abc123", 1, 10, AlphaNumeric...).Validate() == nil)
	assert.Assert(t, String("f", "abc 123", 1, 10, AlphaNumeric...).Validate() != nil)
	assert.Assert(t, String("f", "ab", 3, 0).Validate() != nil)
	assert.Assert(t, String("f", "abcd", 0, 3).Validate() != nil)
}

func TestDateStringRule(t *testing.T) {
	assert.Assert(t, DateString("d", "2025-03-10").Validate() == nil)
	assert.Assert(t, DateString("d", "10/03/2025").Validate() == nil)
	assert.Assert(t, DateString("d", "10-03-2025").Validate() == nil)
	assert.Assert(t, DateString("d", "2025-13-10").Validate() != nil)
	assert.Assert(t, DateString("d", "amanhã").Validate() != nil)
}
