package core

import "strings"

// NormalizePermissions trims and lowercases each entry, drops unknown values and
// duplicates (first occurrence wins) and falls back to DefaultPermissions when
// nothing valid remains.
func NormalizePermissions[T ~string](values []T) []Permission {
	cleaned := make([]Permission, 0, len(values))
	seen := map[Permission]struct{}{}
	for _, value := range values {
		key := Permission(strings.ToLower(strings.TrimSpace(string(value))))
		if key == "" || !key.Valid() {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, key)
	}
	if len(cleaned) == 0 {
		return DefaultPermissions()
	}
	return cleaned
}

func permissionStrings(values []Permission) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, string(value))
	}
	return out
}
