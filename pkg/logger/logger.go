// Package logger configura zerolog para la API y antorchactl. Los componentes
// (store, badger, ledger, transfer) reciben un sublogger con el campo component.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config viene de APP_ENV, LOG_LEVEL y APP_NAME.
type Config struct {
	Env   string // development: consola legible; cualquier otro valor: JSON
	Level string // trace, debug, info, warn, error
	// Service se añade como campo service en cada línea si no está vacío.
	Service string
	// Out destino de los logs; por defecto os.Stdout. antorchactl usa os.Stderr
	// para no mezclar logs con la salida del comando.
	Out io.Writer
}

// Logger raíz del proceso.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger raíz y lo instala también como log.Logger global.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Out != nil {
		w = cfg.Out
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: cfg.Out != nil}
	}

	ctx := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// parseLevel acepta los nombres de zerolog y "warning"; lo demás es info.
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return level
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Component sublogger para un adaptador o caso de uso, ej. Component("store").
func (l *Logger) Component(name string) zerolog.Logger {
	return l.zl.With().Str("component", name).Logger()
}
