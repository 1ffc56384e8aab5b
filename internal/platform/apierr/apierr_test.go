package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsSetStatusAndCode(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{BadRequest("invalid_input", "bad value %d", 7), http.StatusBadRequest},
		{Unauthorized("unauthenticated", "no token"), http.StatusUnauthorized},
		{NotFound("missing", "not here"), http.StatusNotFound},
		{Conflict("stale", "already resolved"), http.StatusConflict},
	}
	for _, c := range cases {
		if c.err.Status != c.status {
			t.Fatalf("expected status %d, got %d", c.status, c.err.Status)
		}
		if c.err.Code == "" || c.err.Err == nil {
			t.Fatalf("constructor must set code and cause: %+v", c.err)
		}
	}
	if got := BadRequest("x", "bad value %d", 7).Error(); got != "bad value 7" {
		t.Fatalf("format args not applied: %q", got)
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	if got := (&Error{Status: http.StatusNotFound, Code: "missing", Err: errors.New("gone")}).Error(); got != "gone" {
		t.Fatalf("cause message should win, got %q", got)
	}
	if got := (&Error{Status: http.StatusNotFound, Code: "missing"}).Error(); got != "missing" {
		t.Fatalf("code should back a missing cause, got %q", got)
	}
	if got := (&Error{Status: http.StatusNotFound}).Error(); got != "Not Found" {
		t.Fatalf("status text is the last resort, got %q", got)
	}
}

func TestFromUnwrapsThroughChain(t *testing.T) {
	inner := NotFound("teacher_not_found", "teacher not found")
	wrapped := fmt.Errorf("loading roster: %w", inner)
	apiErr, ok := From(wrapped)
	if !ok {
		t.Fatalf("expected to find the api error in the chain")
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Code != "teacher_not_found" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
	if _, ok := From(errors.New("plain")); ok {
		t.Fatalf("plain errors must not match")
	}
}
