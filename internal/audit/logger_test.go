package audit

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	appctx "github.com/hrkit/employee-service/internal/pkg/context"
)

func newBufLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(zerolog.New(&buf)), &buf
}

func TestLoginSuccess_MasksEmailAndTagsAudit(t *testing.T) {
	l, buf := newBufLogger()

	ctx := appctx.WithRequestID(context.Background(), "req-1")
	l.LoginSuccess(ctx, 42, "someone@corp.io")

	out := buf.String()
	if strings.Contains(out, "someone@corp.io") {
		t.Fatalf("email not masked: %q", out)
	}
	if !strings.Contains(out, `"audit":true`) {
		t.Fatalf("missing audit tag: %q", out)
	}
	if !strings.Contains(out, `"employee_id":"42"`) {
		t.Fatalf("missing employee_id: %q", out)
	}
	if !strings.Contains(out, `"request_id":"req-1"`) {
		t.Fatalf("missing request_id: %q", out)
	}
}

func TestLoginFailed_IsWarning(t *testing.T) {
	l, buf := newBufLogger()

	l.LoginFailed(context.Background(), "someone@corp.io")

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) {
		t.Fatalf("expected warn level: %q", out)
	}
	if !strings.Contains(out, `"action":"login_failed"`) {
		t.Fatalf("expected action: %q", out)
	}
}

func TestProfileUpdated_NamesFields(t *testing.T) {
	l, buf := newBufLogger()

	l.ProfileUpdated(context.Background(), 7, 1, []string{"name", "age"})

	out := buf.String()
	if !strings.Contains(out, `"fields":["name","age"]`) {
		t.Fatalf("expected field list: %q", out)
	}
}

func TestMaskEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"someone@corp.io", "so***@corp.io"},
		{"a@b.co", "a***@b.co"},
		{"x@y", "***"},
	}

	for _, tc := range cases {
		if got := maskEmail(tc.in); got != tc.want {
			t.Fatalf("maskEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
