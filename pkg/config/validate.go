package config

import (
	"fmt"
	"strings"
)

// Value fragments that force subprocess work or unbounded evaluation at
// shell startup. Any occurrence fails compilation.
var forbiddenFragments = []struct {
	fragment string
	reason   string
}{
	{"$(", "subprocess call $() or backticks not allowed at startup"},
	{"`", "subprocess call $() or backticks not allowed at startup"},
	{"brew --prefix", "brew --prefix is slow; use a pre-resolved path"},
	{"eval ", "eval not allowed for safety"},
}

// InvalidError reports a structurally invalid configuration.
type InvalidError struct {
	Message string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

// ForbiddenPatternError reports a denylisted fragment in an alias or
// environment value. Field is the section-qualified key, e.g. "env.GOROOT".
type ForbiddenPatternError struct {
	Field   string
	Value   string
	Pattern string
	Reason  string
}

func (e *ForbiddenPatternError) Error() string {
	return fmt.Sprintf("forbidden pattern in %s: %s", e.Field, e.Reason)
}

// checkForbidden scans one value with plain substring matches. The denylist
// fragments are chosen so that substring presence alone is a reliable signal.
func checkForbidden(section, key, value string) error {
	for _, f := range forbiddenFragments {
		if strings.Contains(value, f.fragment) {
			return &ForbiddenPatternError{
				Field:   section + "." + key,
				Value:   value,
				Pattern: f.fragment,
				Reason:  f.reason,
			}
		}
	}
	return nil
}
