package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
)

type Fields map[string]any

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

var level = LevelError

// ParseLevel maps debug, info or error (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "error", "":
		return LevelError, nil
	default:
		return LevelError, fmt.Errorf("unknown log level %q", s)
	}
}

func SetLevel(l Level) {
	level = l
}

// SetOutput redirects log lines; the console protocol owns stdout, so
// callers normally leave this on stderr.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Debug(message string, fields Fields) {
	if level > LevelDebug {
		return
	}
	log.Printf("DEBUG %s %s", message, fieldsJSON(fields))
}

func Info(message string, fields Fields) {
	if level > LevelInfo {
		return
	}
	log.Printf("INFO %s %s", message, fieldsJSON(fields))
}

func Error(message string, err error, fields Fields) {
	base := Fields{}
	for k, v := range fields {
		base[k] = v
	}
	if err != nil {
		base["error"] = err.Error()
	}

	log.Printf("ERROR %s %s", message, fieldsJSON(base))
}

func fieldsJSON(fields Fields) string {
	if fields == nil {
		fields = Fields{}
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return `{}`
	}

	return string(b)
}
