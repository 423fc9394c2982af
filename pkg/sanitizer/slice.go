package sanitizer

import "strings"

// NormalizeStringSlice normalizes every item and drops empty results and
// duplicates. Two items are duplicates when key returns the same value for
// them; the first spelling wins.
func NormalizeStringSlice(items []string, normalizer func(string) string, key func(string) string) []string {
	if len(items) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		normalized := normalizer(item)
		if normalized == "" {
			continue
		}

		k := key(normalized)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, normalized)
	}

	return result
}

// NormalizeAmenities treats "WiFi" and "wifi" as the same amenity.
func NormalizeAmenities(amenities []string) []string {
	return NormalizeStringSlice(amenities, TrimAndNormalize, strings.ToLower)
}

func NormalizeURLs(urls []string) []string {
	return NormalizeStringSlice(urls, NormalizeURL, func(s string) string { return s })
}
