package utils

import (
	"regexp"
	"strings"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	edgeDash = regexp.MustCompile(`^-+|-+$`)
)

// GenerateSlug builds the URL slug for a listing from its name and
// district, e.g. ("Naga Kitchen", "Kohima") -> "naga-kitchen-kohima".
func GenerateSlug(name, city string) string {
	slug := strings.ToLower(name + "-" + city)
	slug = nonAlnum.ReplaceAllString(slug, "-")
	return edgeDash.ReplaceAllString(slug, "")
}
