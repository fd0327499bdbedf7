// Package logger — тонкая обёртка над zerolog с глобальным логгером сервиса.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. Init replaces it.
var Logger = log.Logger

const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// Config описывает поведение логгера.
type Config struct {
	Level        string // debug, info, warn, error
	Format       string // json | pretty
	TimeFormat   string
	ReportCaller bool
	Output       io.Writer // по умолчанию os.Stdout
}

// Init настраивает глобальный логгер. Неизвестный уровень превращается в info.
func Init(cfg Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Format == FormatPretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}

	if cfg.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	lc := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.ReportCaller {
		lc = lc.Caller()
	}

	Logger = lc.Logger()
	log.Logger = Logger
}

func Debug() *zerolog.Event { return Logger.Debug() }

func Info() *zerolog.Event { return Logger.Info() }

func Warn() *zerolog.Event { return Logger.Warn() }

func Error() *zerolog.Event { return Logger.Error() }

// Fatal пишет событие и завершает процесс.
func Fatal() *zerolog.Event { return Logger.Fatal() }

// Ctx достаёт логгер из контекста; если его там нет, возвращается глобальный.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &Logger
}

// WithContext кладёт глобальный логгер в контекст.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}
