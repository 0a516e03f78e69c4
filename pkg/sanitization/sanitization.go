package sanitization

import (
	"fmt"
	"strings"
)

const redactedValue = "[REDACTED]"

// blockedSubstrings mark field keys whose values must never reach a log.
//
// Context files are free-form, so any key that looks like a credential is
// redacted regardless of where it came from.
var blockedSubstrings = []string{
	"secret",
	"token",
	"password",
	"private_key",
	"api_key",
	"authorization",
	"credential",
}

// SanitizeLogString removes control characters that could enable log forging.
func SanitizeLogString(value string) string {
	if value == "" {
		return value
	}
	value = strings.ReplaceAll(value, "\r", "")
	value = strings.ReplaceAll(value, "\n", "")
	return value
}

// SanitizeFieldValue sanitizes a field value based on its key name.
func SanitizeFieldValue(key string, value any) any {
	keyLower := strings.ToLower(strings.TrimSpace(key))
	for _, substr := range blockedSubstrings {
		if keyLower != "" && strings.Contains(keyLower, substr) {
			return redactedValue
		}
	}
	return sanitizeValue(value)
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case nil:
		return nil
	case string:
		return SanitizeLogString(typed)
	case []byte:
		return SanitizeLogString(string(typed))
	case bool, int, int64, float64:
		return typed
	case []string:
		out := make([]string, len(typed))
		for i := range typed {
			out[i] = SanitizeLogString(typed[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = SanitizeFieldValue(k, v)
		}
		return out
	default:
		return SanitizeLogString(fmt.Sprintf("%v", typed))
	}
}
