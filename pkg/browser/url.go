package browser

import (
	"fmt"
	"net/url"
)

// BuildURL composes an absolute URL from a possibly-relative path and the
// page URL it is relative to. A path that already carries a host is
// returned unchanged. Otherwise scheme and host come from currentURL, the
// path replaces the current path (empty keeps it), rawQuery replaces the
// current query verbatim (empty clears it, and no encoding is applied:
// pre-encoding is the caller's job), and any fragment is dropped.
func BuildURL(currentURL, path, rawQuery string) (string, error) {
	parsed, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse path %q: %w", path, err)
	}
	if parsed.Host != "" {
		return path, nil
	}

	base, err := url.Parse(currentURL)
	if err != nil {
		return "", fmt.Errorf("parse current url %q: %w", currentURL, err)
	}

	built := url.URL{
		Scheme:   base.Scheme,
		User:     base.User,
		Host:     base.Host,
		Path:     base.Path,
		RawQuery: rawQuery,
	}
	if parsed.Path != "" {
		built.Path = parsed.Path
	}
	return built.String(), nil
}

// BuildURLQuery is BuildURL with the query given as values instead of a
// raw string. Values are serialized as application/x-www-form-urlencoded
// pairs in url.Values.Encode order (sorted by key). Nil or empty values
// clear the query.
func BuildURLQuery(currentURL, path string, query url.Values) (string, error) {
	return BuildURL(currentURL, path, query.Encode())
}
