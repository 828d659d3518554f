package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// Logger provides leveled logging for every pipeline stage. It is created
// once in main and injected into each component.
type Logger struct {
	out *log.Logger
	err *log.Logger
}

// NewLogger creates a Logger writing INFO/WARN/DEBUG to stdout and ERROR to stderr.
func NewLogger() *Logger {
	return &Logger{
		out: log.New(os.Stdout, "", 0),
		err: log.New(os.Stderr, "", 0),
	}
}

func (l *Logger) print(dst *log.Logger, color, level, format string, args ...any) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	dst.Printf("[%s] %s%-5s%s %s", ts, color, level, colorReset, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.print(l.out, colorGreen, "INFO", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.print(l.out, colorYellow, "WARN", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.print(l.err, colorRed, "ERROR", format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.print(l.out, colorCyan, "DEBUG", format, args...)
}
