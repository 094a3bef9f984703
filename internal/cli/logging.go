// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

// newLogger fans records out to a colourised handler on stderr and, when
// logPath is set, to a plain text handler appending to that file.
func newLogger(stderr io.Writer, logPath string, level slog.Level) (*slog.Logger, func() error, error) {
	handlers := []slog.Handler{
		tint.NewHandler(stderr, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return attr
			},
		}),
	}

	closer := func() error { return nil }
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
			return nil, nil, fmt.Errorf("cli: log directory: %w", err)
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cli: open log file: %w", err)
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// closeInto runs closer and joins its error into *err.
func closeInto(err *error, closer func() error) {
	if cerr := closer(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("cli: close log: %w", cerr))
	}
}
