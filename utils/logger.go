package utils

import (
	"io"
	"os"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/sce-tools/sce/pkg/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger configures the process logger for one invocation. Console output
// goes to w (stderr in practice) and stays quiet unless -v or -x is given; the
// optional log file always records debug and above.
func InitLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	consoleLevel := zerolog.WarnLevel
	switch {
	case cfg.Trace:
		consoleLevel = zerolog.TraceLevel
	case cfg.Verbose:
		consoleLevel = zerolog.DebugLevel
	}

	if w == nil {
		w = os.Stderr
	}

	writers := []io.Writer{
		levelFilter{
			Writer: zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true},
			min:    consoleLevel,
		},
	}
	level := consoleLevel

	if cfg.LogFile != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 10,
			MaxAge:     14,
			Compress:   true,
		}
		writers = append(writers, fileLogger)
		if level > zerolog.DebugLevel {
			level = zerolog.DebugLevel
		}
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("invocation", xid.New().String()).
		Logger()
}

// levelFilter drops events below min so the console and the log file can run
// at different levels behind a single logger.
type levelFilter struct {
	io.Writer
	min zerolog.Level
}

func (f levelFilter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l < f.min {
		return len(p), nil
	}
	return f.Writer.Write(p)
}
