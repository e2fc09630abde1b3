package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	out *output

	Name  string
	Level LogLevel

	TimeFormat string
	NoColor    bool
	JSON       bool
}

// LoggerOptions configures where and how a root logger writes.
type LoggerOptions struct {
	Level LogLevel
	// File enables rotated file output next to (or instead of) the terminal.
	File       string
	NoTerminal bool
	NoColor    bool
	JSON       bool
	// Writer replaces terminal and file output entirely when set.
	Writer   io.Writer
	Rotation *LoggerRotation
}

type LoggerRotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// output is shared between a logger and all of its named children.
type output struct {
	mu     sync.Mutex
	writer io.Writer
	file   *lumberjack.Logger
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

func NewLogger(name string, opts LoggerOptions) *Logger {
	if opts.Rotation == nil {
		opts.Rotation = &LoggerRotation{
			MaxSize:    128,
			MaxBackups: 5,
			MaxAge:     16,
		}
	}

	l := &Logger{
		out:   newOutput(opts),
		Name:  name,
		Level: opts.Level,

		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    opts.NoColor || opts.NoTerminal || opts.Writer != nil,
		JSON:       opts.JSON,
	}

	return l
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return NewLogger("", LoggerOptions{Level: Fatal + 1, Writer: io.Discard})
}

func newOutput(opts LoggerOptions) *output {
	if opts.Writer != nil {
		return &output{writer: opts.Writer}
	}

	var writers []io.Writer
	out := &output{}

	if !opts.NoTerminal {
		writers = append(writers, os.Stdout)
	}

	if opts.File != "" {
		out.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.Rotation.MaxSize,
			MaxBackups: opts.Rotation.MaxBackups,
			MaxAge:     opts.Rotation.MaxAge,
			Compress:   opts.Rotation.Compress,
		}
		writers = append(writers, out.file)
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	out.writer = io.MultiWriter(writers...)
	return out
}

func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.Level
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formattedMsg := fmt.Sprintf(msg, args...)

	var line string
	if l.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Service:   l.Name,
			Message:   formattedMsg,
		}

		jsonBytes, _ := json.Marshal(entry)
		line = string(jsonBytes) + "\n"
	} else {
		prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
		if l.Name != "" {
			prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
		}

		if l.NoColor {
			line = fmt.Sprintf("%s %s\n", prefix, formattedMsg)
		} else {
			line = fmt.Sprintf("%s%s %s\033[0m\n", level.color(), prefix, formattedMsg)
		}
	}

	l.out.mu.Lock()
	io.WriteString(l.out.writer, line)
	l.out.mu.Unlock()

	if level == Fatal {
		os.Exit(1)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.log(Fatal, msg, args...)
}

// Named returns a child logger writing to the same output as "<parent>/<name>".
func (l *Logger) Named(name string) *Logger {
	if l.Name != "" {
		name = fmt.Sprintf("%s/%s", l.Name, name)
	}

	return &Logger{
		out: l.out,

		Name:  name,
		Level: l.Level,

		TimeFormat: l.TimeFormat,
		NoColor:    l.NoColor,
		JSON:       l.JSON,
	}
}

// Close releases the rotated log file, if any.
func (l *Logger) Close() error {
	if l.out.file == nil {
		return nil
	}

	return l.out.file.Close()
}
