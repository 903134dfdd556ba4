// Package logging configures a logrus logger that never writes to the
// terminal. The TUI owns the screen, so entries go to a rotating file only.
package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/idilsaglam/packlist/internal/config"
)

// New returns a logger configured from cfg. With no file configured every
// entry is discarded.
func New(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	formatter := new(lineFormatter)
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(formatter)
	log.SetLevel(level)

	if cfg.File != "" {
		log.AddHook(NewFileHook(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     10, // days
		}, formatter))
	}
	return log, nil
}

// Discard is a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fileHook struct {
	mu        sync.Mutex
	w         io.Writer
	formatter logrus.Formatter
}

// NewFileHook writes every entry to w using formatter.
func NewFileHook(w io.Writer, formatter logrus.Formatter) logrus.Hook {
	return &fileHook{w: w, formatter: formatter}
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return fmt.Errorf("format entry: %w", err)
	}
	_, err = h.w.Write(msg)
	return err
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

type lineFormatter struct{}

// Format renders "[time] LEVEL: message (k=v, ...)" with fields sorted by key.
func (f *lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	fields := ""
	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fs := make([]string, 0, len(keys))
		for _, k := range keys {
			fs = append(fs, fmt.Sprintf("%s=%v", k, entry.Data[k]))
		}
		fields = fmt.Sprintf(" (%s)", strings.Join(fs, ", "))
	}

	line := fmt.Sprintf("[%s] %5s: %s%s\n",
		entry.Time.Format("2006-01-02T15:04:05Z07:00"),
		strings.ToUpper(entry.Level.String()),
		entry.Message,
		fields,
	)
	return []byte(line), nil
}
