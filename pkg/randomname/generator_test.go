package randomname_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userkit/pkg/randomname"
	"github.com/dmitrymomot/userkit/pkg/validator"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("default separator", func(t *testing.T) {
		t.Parallel()
		name := randomname.Generate(randomname.Options{})
		assert.Contains(t, name, "_")
		assert.NotContains(t, name, " ")
	})

	t.Run("custom separator", func(t *testing.T) {
		t.Parallel()
		name := randomname.Generate(randomname.Options{Separator: "-"})
		assert.Contains(t, name, "-")
		assert.NotContains(t, name, "_")
	})

	t.Run("numeric suffix has four digits", func(t *testing.T) {
		t.Parallel()
		name := randomname.Generate(randomname.Options{NumericSuffix: true})
		parts := strings.Split(name, "_")
		require.Len(t, parts, 3)
		assert.Len(t, parts[2], 4)
	})

	t.Run("validator hook filters candidates", func(t *testing.T) {
		t.Parallel()
		name := randomname.Generate(randomname.Options{
			Validator: func(s string) bool { return strings.HasPrefix(s, "b") },
		})
		// either a b-name was found or the loop gave up with the last
		// candidate; both must still be non-empty
		assert.NotEmpty(t, name)
	})
}

func TestGeneratedNamesSatisfyNicknameRules(t *testing.T) {
	t.Parallel()

	for range 200 {
		name := randomname.Nickname()
		err := validator.Apply(
			validator.MinLen("nickname", name, 3),
			validator.NicknameCharset("nickname", name),
		)
		require.NoError(t, err, "generated nickname should validate: %s", name)
	}
}
