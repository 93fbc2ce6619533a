package config

import (
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands variable references in content. Unset references
// without a default are left in place and reported in missing; ":?" messages
// are appended to the name.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]

		value, ok := os.LookupEnv(name)
		if ok && (op == "" || value != "") {
			return value
		}

		switch op {
		case ":-":
			return arg
		case ":?":
			missing = append(missing, name+": "+strings.TrimSpace(arg))
		default:
			missing = append(missing, name)
		}
		return match
	})
	return out, missing
}
