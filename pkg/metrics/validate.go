package metrics

import (
	"errors"
	"net/url"
)

// absoluteURL — правило ozzo-validation: непустое значение должно быть URL со схемой и host.
func absoluteURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("должен быть URL вида http://host:port")
	}
	return nil
}
