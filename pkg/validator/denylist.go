package validator

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed common_passwords.yaml
var commonPasswordsYAML []byte

// commonPasswords holds the deny list used by NotCommonPassword, keyed by
// lowercased entry.
var commonPasswords = mustLoadDenyList(commonPasswordsYAML)

// mustLoadDenyList parses the embedded deny list. A malformed list is a
// programming error in rule configuration, so it fails at package init
// rather than per request.
func mustLoadDenyList(raw []byte) map[string]struct{} {
	var entries []string
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		panic(fmt.Errorf("validator: malformed password deny list: %w", err))
	}

	set := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		set[entry] = struct{}{}
	}
	return set
}
