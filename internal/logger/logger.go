package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Get returns the process logger. The first call decides the level and
// output format; later calls ignore the argument.
func Get(debug ...bool) zerolog.Logger {
	once.Do(func() {
		level := zerolog.InfoLevel
		var out = os.Stdout
		logger := zerolog.New(out)
		if len(debug) > 0 && debug[0] {
			level = zerolog.DebugLevel
			logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
		}
		log = logger.Level(level).With().Timestamp().Logger()
	})
	return log
}
