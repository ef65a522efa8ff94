package audit

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	appctx "github.com/hrkit/employee-service/internal/pkg/context"
)

// Logger provides structured audit logging for account and profile events.
type Logger struct {
	log zerolog.Logger
}

// New creates a new audit logger
func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

// LoginSuccess logs a successful login
func (l *Logger) LoginSuccess(ctx context.Context, employeeID int64, email string) {
	l.log.Info().
		Str("action", "login_success").
		Str("employee_id", strconv.FormatInt(employeeID, 10)).
		Str("email", maskEmail(email)).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Employee logged in successfully")
}

// LoginFailed logs a failed login attempt
func (l *Logger) LoginFailed(ctx context.Context, email string) {
	l.log.Warn().
		Str("action", "login_failed").
		Str("email", maskEmail(email)).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Login attempt failed")
}

// AccountCreated logs a new account registration
func (l *Logger) AccountCreated(ctx context.Context, employeeID, actorID int64, role string) {
	l.log.Info().
		Str("action", "account_created").
		Str("employee_id", strconv.FormatInt(employeeID, 10)).
		Str("actor_id", strconv.FormatInt(actorID, 10)).
		Str("role", role).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Employee account created")
}

// AccountDeleted logs an account removal
func (l *Logger) AccountDeleted(ctx context.Context, employeeID, actorID int64) {
	l.log.Warn().
		Str("action", "account_deleted").
		Str("employee_id", strconv.FormatInt(employeeID, 10)).
		Str("actor_id", strconv.FormatInt(actorID, 10)).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Employee account deleted")
}

// ProfileAdded logs a profile record being filled
func (l *Logger) ProfileAdded(ctx context.Context, employeeID int64) {
	l.log.Info().
		Str("action", "profile_added").
		Str("employee_id", strconv.FormatInt(employeeID, 10)).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Employee profile added")
}

// ProfileUpdated logs a partial update, naming the touched fields
func (l *Logger) ProfileUpdated(ctx context.Context, employeeID, actorID int64, fields []string) {
	l.log.Info().
		Str("action", "profile_updated").
		Str("employee_id", strconv.FormatInt(employeeID, 10)).
		Str("actor_id", strconv.FormatInt(actorID, 10)).
		Strs("fields", fields).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Employee data updated")
}

// maskEmail partially masks email for privacy in logs
func maskEmail(email string) string {
	if len(email) < 5 {
		return "***"
	}
	at := 0
	for i, c := range email {
		if c == '@' {
			at = i
			break
		}
	}
	if at < 2 {
		return email[:1] + "***" + email[at:]
	}
	return email[:2] + "***" + email[at:]
}
