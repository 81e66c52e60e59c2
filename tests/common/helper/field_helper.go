//go:build unit || e2e

package helper

func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

func Nested(key string, mutate func(m map[string]any)) func(m map[string]any) {
	return func(m map[string]any) {
		if inner, ok := m[key].(map[string]any); ok {
			mutate(inner)
		}
	}
}
