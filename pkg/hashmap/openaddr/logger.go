package openaddr

import (
	"fmt"
	"io"
	"log"
	"os"
)

type logLevel = uint8

const (
	LevelDebug logLevel = iota + 1
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

func LevelText(level logLevel) string {
	switch level {
	case LevelDebug:
		return "Level=Debug"
	case LevelInfo:
		return "Level=Info"
	case LevelWarn:
		return "Level=Warn"
	case LevelError:
		return "Level=Error"
	case LevelOff:
		return "Level=Off"
	default:
		return "Level=Unknown"
	}
}

// ParseLevel maps a level name (debug, info, warn, error, off) to its level.
func ParseLevel(s string) (logLevel, bool) {
	switch s {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "off":
		return LevelOff, true
	}
	return LevelOff, false
}

type Logger struct {
	*log.Logger
	level logLevel
}

func newLogger(w io.Writer, level logLevel) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		Logger: log.New(w, "", log.LstdFlags),
		level:  level,
	}
}

func (l *Logger) logf(level logLevel, tag string, s string, a ...interface{}) {
	if l.level > level {
		return
	}
	ls := fmt.Sprintf("| %5s | %s", tag, s)
	if len(a) == 0 {
		l.Println(ls)
		return
	}
	l.Printf(ls, a...)
}

func (l *Logger) Debug(s string, a ...interface{}) {
	l.logf(LevelDebug, "DEBUG", s, a...)
}

func (l *Logger) Info(s string, a ...interface{}) {
	l.logf(LevelInfo, "INFO", s, a...)
}

func (l *Logger) Warn(s string, a ...interface{}) {
	l.logf(LevelWarn, "WARN", s, a...)
}

func (l *Logger) Error(s string, a ...interface{}) {
	l.logf(LevelError, "ERROR", s, a...)
}
