package util

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

type driverError struct{ msg string }

func (e *driverError) Error() string { return e.msg }

func TestAsAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   ErrorKind
	}{
		{name: "validation", err: Validation("missing %s", "session_id"), wantStatus: http.StatusBadRequest, wantKind: KindValidation},
		{name: "not found", err: NotFound("session"), wantStatus: http.StatusNotFound, wantKind: KindNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", NotFound("answer")), wantStatus: http.StatusNotFound, wantKind: KindNotFound},
		{name: "plain error", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantKind: KindUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AsAPIError(tt.err)
			if got.Status != tt.wantStatus || got.Kind != tt.wantKind {
				t.Errorf("AsAPIError() = (%d, %s), want (%d, %s)", got.Status, got.Kind, tt.wantStatus, tt.wantKind)
			}
		})
	}
}

func TestUpstreamMessageNamesRootType(t *testing.T) {
	err := fmt.Errorf("insert answer: %w", &driverError{msg: "duplicate key"})
	got := UpstreamMessage(err)
	if !strings.HasPrefix(got, "util.driverError: ") {
		t.Errorf("UpstreamMessage() = %q, want util.driverError prefix", got)
	}
	if !strings.HasSuffix(got, "insert answer: duplicate key") {
		t.Errorf("UpstreamMessage() = %q, want full message", got)
	}
}

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		limit, offset string
		wantL, wantO  int
	}{
		{"", "", DefaultPageLimit, 0},
		{"5", "10", 5, 10},
		{"0", "-3", DefaultPageLimit, 0},
		{"1000", "x", MaxPageLimit, 0},
	}
	for _, tt := range tests {
		l, o := ParseLimitOffset(tt.limit, tt.offset)
		if l != tt.wantL || o != tt.wantO {
			t.Errorf("ParseLimitOffset(%q, %q) = (%d, %d), want (%d, %d)", tt.limit, tt.offset, l, o, tt.wantL, tt.wantO)
		}
	}
}

func TestValidateMimeType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	if mt, err := ValidateMimeType(png, []string{MimePNG}); err != nil || mt != MimePNG {
		t.Errorf("png rejected: %q %v", mt, err)
	}
	if _, err := ValidateMimeType([]byte("hello world"), []string{MimePNG}); err == nil {
		t.Error("text accepted as png")
	}
}
