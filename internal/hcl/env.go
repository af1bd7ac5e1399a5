package hcl

import (
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// envObject turns KEY=VALUE pairs into a cty object. Malformed entries and
// entries with an empty key are skipped; a later duplicate key wins.
func envObject(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}
