package user

import (
	"github.com/dmitrymomot/userkit/pkg/config"
	"github.com/dmitrymomot/userkit/pkg/validator"
)

// Policy carries the tunable validation knobs. The zero value is not
// usable; start from DefaultPolicy or PolicyFromEnv.
type Policy struct {
	NicknameMinLen  int
	Password        validator.PasswordPolicy
	DefaultPageSize int
}

// DefaultPolicy returns the policy validated shapes use unless the caller
// supplies an override: nicknames of 3+ characters, the full password
// complexity policy, pages of 10.
func DefaultPolicy() Policy {
	return Policy{
		NicknameMinLen:  3,
		Password:        validator.DefaultPasswordPolicy(),
		DefaultPageSize: 10,
	}
}

type policyConfig struct {
	NicknameMinLen   int  `env:"USER_NICKNAME_MIN_LEN" envDefault:"3"`
	PasswordMinLen   int  `env:"USER_PASSWORD_MIN_LEN" envDefault:"8"`
	PasswordDenyList bool `env:"USER_PASSWORD_DENY_COMMON" envDefault:"true"`
	DefaultPageSize  int  `env:"USER_DEFAULT_PAGE_SIZE" envDefault:"10"`
}

// PolicyFromEnv builds a policy from environment variables, falling back to
// the defaults for anything unset. The character-class requirements are not
// tunable: weakening them is a product decision, not a deployment one.
func PolicyFromEnv() (Policy, error) {
	cfg, err := config.Load[policyConfig]()
	if err != nil {
		return Policy{}, err
	}

	policy := DefaultPolicy()
	policy.NicknameMinLen = cfg.NicknameMinLen
	policy.Password.MinLength = cfg.PasswordMinLen
	policy.Password.DenyCommon = cfg.PasswordDenyList
	policy.DefaultPageSize = cfg.DefaultPageSize
	return policy, nil
}
