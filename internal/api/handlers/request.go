package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
)

const maxBodyBytes = 1 << 20

var (
	errBodyRequired = errors.New("Request body is required")
	errInvalidJSON  = errors.New("Invalid JSON in request body")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errInvalidJSON
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return errBodyRequired
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errInvalidJSON
	}

	return nil
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}
