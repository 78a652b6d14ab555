package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userkit/pkg/validator"
)

func TestNicknameCharset(t *testing.T) {
	t.Parallel()

	t.Run("accepts letters digits underscore hyphen", func(t *testing.T) {
		t.Parallel()
		valid := []string{
			"test-user",
			"john_doe123",
			"123test",
			"ABC",
			"a-b_c",
		}
		for _, nickname := range valid {
			err := validator.Apply(validator.NicknameCharset("nickname", nickname))
			assert.NoError(t, err, "nickname should be valid: %s", nickname)
		}
	})

	t.Run("rejects whitespace punctuation and symbols", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"",
			"test user",
			"test.user",
			"test!user",
			"naïve",
			"user😀",
			"semi;colon",
		}
		for _, nickname := range invalid {
			err := validator.Apply(validator.NicknameCharset("nickname", nickname))
			require.Error(t, err, "nickname should be invalid: %q", nickname)
			verrs := validator.ExtractValidationErrors(err)
			assert.Equal(t, validator.CodeInvalidNickname, verrs[0].Code)
		}
	})
}
