package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	appctx "github.com/hrkit/employee-service/internal/pkg/context"
)

var Logger zerolog.Logger

func Init() {
	InitWithWriter(os.Stdout)
}

func InitWithWriter(w io.Writer) {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	format := os.Getenv("LOG_FORMAT") // "json" or "console"
	if format == "" {
		format = "console"
	}

	if format == "json" {
		Logger = zerolog.New(w).With().Timestamp().Logger().Level(level)
	} else {
		Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger().Level(level)
	}

	// set global
	zlog.Logger = Logger
}

// WithCtx returns the package logger annotated with the request id, when the
// request-id middleware has populated the context.
func WithCtx(ctx context.Context) *zerolog.Logger {
	if id := appctx.GetRequestID(ctx); id != "" {
		l := Logger.With().Str("request_id", id).Logger()
		return &l
	}
	return &Logger
}
