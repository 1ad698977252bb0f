package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"new", New(ErrCodeInvalidData, "NaN at index %d", 3), "INVALID_DATA: NaN at index 3"},
		{"wrap", Wrap(ErrCodeIO, errors.New("disk full"), "create %s", "out.png"), "IO: create out.png: disk full"},
		{"wrap nil cause", Wrap(ErrCodeIO, nil, "flush"), "IO: flush"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapChain(t *testing.T) {
	cause := errors.New("permission denied")
	err := fmt.Errorf("save figure: %w", Wrap(ErrCodeIO, cause, "create out.svg"))

	if !errors.Is(err, cause) {
		t.Error("cause lost through Wrap and fmt.Errorf")
	}
	if !Is(err, ErrCodeIO) {
		t.Error("code lost through fmt.Errorf")
	}
	if got := UserMessage(err); got != "create out.svg" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestCodeLookup(t *testing.T) {
	nested := Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidFrame, "plot.left"), "load figure.toml")

	tests := []struct {
		name     string
		err      error
		code     Code
		wantCode Code
		wantIs   bool
	}{
		{"direct", New(ErrCodeEmptyData, "no points"), ErrCodeEmptyData, ErrCodeEmptyData, true},
		{"other code", New(ErrCodeEmptyData, "no points"), ErrCodeIO, ErrCodeEmptyData, false},
		{"outermost wins", nested, ErrCodeInvalidConfig, ErrCodeInvalidConfig, true},
		{"inner hidden", nested, ErrCodeInvalidFrame, ErrCodeInvalidConfig, false},
		{"plain", errors.New("boom"), ErrCodeInternal, "", false},
		{"nil", nil, ErrCodeInternal, "", false},
		{"empty code", errors.New("boom"), "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
			if got := Is(tt.err, tt.code); got != tt.wantIs {
				t.Errorf("Is(%q) = %v, want %v", tt.code, got, tt.wantIs)
			}
		})
	}
}

func TestUserMessagePlain(t *testing.T) {
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", New(ErrCodeInvalidData, "NaN"), 400},
		{"invalid frame", New(ErrCodeInvalidFrame, "plot.left"), 400},
		{"empty data", New(ErrCodeEmptyData, "no points"), 400},
		{"wrapped config", Wrap(ErrCodeInvalidConfig, errors.New("toml"), "decode"), 400},
		{"not found", New(ErrCodeNotFound, "layout"), 404},
		{"unsupported", New(ErrCodeUnsupported, "gif"), 501},
		{"io", New(ErrCodeIO, "disk"), 500},
		{"internal", New(ErrCodeInternal, "bug"), 500},
		{"plain", errors.New("boom"), 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
