package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger builds a zerolog logger writing to w.
func (l Log) Logger(w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: log level %q", ErrInvalid, l.Level)
	}
	if l.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
