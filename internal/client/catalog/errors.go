package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse ответ каталога не удалось разобрать
var ErrMalformedResponse = errors.New("malformed catalog response")

// HTTPError is returned for a non-2xx catalog response.
type HTTPError struct {
	Status     string // текст статуса без кода, например "Not Found"
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d %s", e.StatusCode, e.Status)
}

// IsNotFound reports whether err is a 404 from the catalog.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == 404
}
