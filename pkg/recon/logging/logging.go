// Package logging builds the run logger: console output plus an in-memory
// capture of every entry, which the orchestrator hands to the report writer
// at the end of a run. There is no process-wide logger; the logger and its
// capture buffer are constructed per run and passed down explicitly.
package logging

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/steelneuf/DWH---Test/pkg/recon/models"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum level to emit (debug, info, warn, error).
	Level string `mapstructure:"level"`
	// Format selects the console encoder: "console" or "json".
	Format string `mapstructure:"format"`
}

// Capture is an append-only in-memory log sink.
type Capture struct {
	mu      sync.Mutex
	records []models.LogRecord
}

// Records returns the captured log lines in emission order.
func (c *Capture) Records() []models.LogRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.LogRecord(nil), c.records...)
}

func (c *Capture) append(rec models.LogRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, rec)
}

// New creates a zap logger that writes to stderr and to a fresh Capture.
func New(cfg Config) (*zap.Logger, *Capture, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		encCfg = zap.NewProductionEncoderConfig()
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	capture := &Capture{}
	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level),
		&captureCore{LevelEnabler: level, capture: capture},
	)
	return zap.New(core), capture, nil
}

// captureCore is a zapcore.Core that appends every entry to a Capture.
type captureCore struct {
	zapcore.LevelEnabler
	capture *Capture
	fields  []zapcore.Field
}

func (c *captureCore) With(fields []zapcore.Field) zapcore.Core {
	return &captureCore{
		LevelEnabler: c.LevelEnabler,
		capture:      c.capture,
		fields:       append(append([]zapcore.Field(nil), c.fields...), fields...),
	}
}

func (c *captureCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *captureCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	c.capture.append(models.LogRecord{
		Tijd:    ent.Time.Format("2006-01-02 15:04:05"),
		Niveau:  ent.Level.CapitalString(),
		Bericht: renderMessage(ent.Message, append(c.fields, fields...)),
	})
	return nil
}

func (c *captureCore) Sync() error {
	return nil
}

// renderMessage flattens structured fields into "key=value" suffixes so the
// Logs report sheet stays a single text column.
func renderMessage(msg string, fields []zapcore.Field) string {
	if len(fields) == 0 {
		return msg
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(msg)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
	}
	return b.String()
}
