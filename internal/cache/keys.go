package cache

import "strings"

const (
	GlobalKeyPrefix = "medread"

	imagesService = "images"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// ImageStatsKey holds a user's per-category image counts.
func ImageStatsKey(userID string) string {
	return GenerateCacheKey(imagesService, "stats", userID)
}

// CategoriesKey holds a user's distinct category list.
func CategoriesKey(userID string) string {
	return GenerateCacheKey(imagesService, "categories", userID)
}

// ImageKeys returns every derived key that must be dropped when a user's image set changes.
func ImageKeys(userID string) []string {
	return []string{ImageStatsKey(userID), CategoriesKey(userID)}
}
