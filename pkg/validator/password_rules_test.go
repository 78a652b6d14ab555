package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userkit/pkg/validator"
)

func TestDefaultPasswordPolicy(t *testing.T) {
	t.Parallel()
	policy := validator.DefaultPasswordPolicy()

	assert.Equal(t, 8, policy.MinLength)
	assert.True(t, policy.RequireUppercase)
	assert.True(t, policy.RequireLowercase)
	assert.True(t, policy.RequireDigit)
	assert.True(t, policy.RequireSpecial)
	assert.True(t, policy.DenyCommon)
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()
	policy := validator.DefaultPasswordPolicy()

	t.Run("valid strong passwords", func(t *testing.T) {
		t.Parallel()
		valid := []string{
			"Secure*1234",
			"StrongP@ss123",
			"C0mplex!Password",
			"aB3$defghijklmnop",
		}
		for _, password := range valid {
			err := validator.Apply(validator.StrongPassword("password", password, policy)...)
			assert.NoError(t, err, "password should be strong: %s", password)
		}
	})

	t.Run("reports every unmet predicate in one pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.StrongPassword("password", "short", policy)...)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		// length, uppercase, digit, special all fail; lowercase passes
		require.Len(t, verrs, 4)
		for _, ve := range verrs {
			assert.Equal(t, "password", ve.Field)
			assert.Equal(t, validator.CodeWeakPassword, ve.Code)
		}
		messages := verrs.Get("password")
		assert.Contains(t, messages, "password must be at least 8 characters long")
		assert.Contains(t, messages, "password must contain at least one uppercase letter")
		assert.Contains(t, messages, "password must contain at least one digit")
		assert.Contains(t, messages, "password must contain at least one special character")
	})

	t.Run("missing uppercase reported exactly once", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.StrongPassword("password", "nocaps123!", policy)...)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "password must contain at least one uppercase letter", verrs[0].Message)
	})

	t.Run("policy toggles drop predicates", func(t *testing.T) {
		t.Parallel()
		relaxed := validator.PasswordPolicy{MinLength: 6, RequireLowercase: true}
		err := validator.Apply(validator.StrongPassword("password", "simple", relaxed)...)
		assert.NoError(t, err)
	})
}

func TestPasswordPredicates(t *testing.T) {
	t.Parallel()

	t.Run("min length", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.PasswordMinLen("password", "12345678", 8)))
		assert.Error(t, validator.Apply(validator.PasswordMinLen("password", "1234567", 8)))
	})

	t.Run("uppercase", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.PasswordUppercase("password", "aBc")))
		assert.Error(t, validator.Apply(validator.PasswordUppercase("password", "abc")))
	})

	t.Run("lowercase", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.PasswordLowercase("password", "AbC")))
		assert.Error(t, validator.Apply(validator.PasswordLowercase("password", "ABC")))
	})

	t.Run("digit", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.PasswordDigit("password", "abc1")))
		assert.Error(t, validator.Apply(validator.PasswordDigit("password", "abc")))
	})

	t.Run("special characters from the fixed set", func(t *testing.T) {
		t.Parallel()
		for _, c := range validator.PasswordSpecialChars {
			err := validator.Apply(validator.PasswordSpecialChar("password", "abc"+string(c)))
			assert.NoError(t, err, "character %q should count as special", c)
		}
		assert.Error(t, validator.Apply(validator.PasswordSpecialChar("password", "abc123")))
		assert.Error(t, validator.Apply(validator.PasswordSpecialChar("password", "abc 123")))
	})
}

func TestNotCommonPassword(t *testing.T) {
	t.Parallel()

	t.Run("deny-listed entries rejected case-insensitively", func(t *testing.T) {
		t.Parallel()
		for _, password := range []string{"password", "Password", "QWERTY123", "letmein"} {
			err := validator.Apply(validator.NotCommonPassword("password", password))
			assert.Error(t, err, "password should be deny-listed: %s", password)
		}
	})

	t.Run("uncommon passwords pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.NotCommonPassword("password", "xK9#mQ2$vL5p"))
		assert.NoError(t, err)
	})
}
