package logger

import (
	"io"
	"log/slog"

	"github.com/err0r500/go-ldp-server/uc"
)

type logger struct {
	log *slog.Logger
}

// New returns a text logger writing to w; debug enables the debug level
func New(w io.Writer, debug bool) uc.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return logger{
		log: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// Discard returns a logger dropping every record
func Discard() uc.Logger {
	return New(io.Discard, false)
}

func (l logger) Debug(msg string, keyvals ...interface{}) {
	l.log.Debug(msg, keyvals...)
}

func (l logger) Info(msg string, keyvals ...interface{}) {
	l.log.Info(msg, keyvals...)
}

func (l logger) Error(msg string, keyvals ...interface{}) {
	l.log.Error(msg, keyvals...)
}
