package sanitizer

import (
	"strings"
)

// NormalizeEndpoint canonicalizes a vendor API base URL: forces https,
// lower-cases the host, and strips any trailing slash so paths can be
// appended directly.
func NormalizeEndpoint(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")
	parts := strings.SplitN(url, "/", 2)
	domain := strings.ToLower(parts[0])
	var path string
	if len(parts) > 1 {
		path = "/" + parts[1]
	}
	result := "https://" + domain + path
	result = strings.TrimSuffix(result, "/")
	return result
}
