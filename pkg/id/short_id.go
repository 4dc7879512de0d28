package id

import "github.com/teris-io/shortid"

// ShortId generates a short url-safe id. Returns an empty string on failure.
func ShortId() string {
	id, err := shortid.Generate()
	if err != nil {
		return ""
	}
	return id
}
