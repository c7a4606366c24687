package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

type palette struct {
	time      string
	component string
	fg        string
	value     string
	warn      string
	warnBg    string
	err       string
	errBg     string
}

var palettes = map[string]palette{
	"everforest": {
		time:      "\x1b[38;5;107m",
		component: "\x1b[38;5;208m",
		fg:        "\x1b[38;5;223m",
		value:     "\x1b[38;5;108m",
		warn:      "\x1b[38;5;179m",
		warnBg:    "\x1b[48;5;58m",
		err:       "\x1b[38;5;167m",
		errBg:     "\x1b[48;5;52m",
	},
	"gruvbox": {
		time:      "\x1b[38;5;108m",
		component: "\x1b[38;5;214m",
		fg:        "\x1b[38;5;223m",
		value:     "\x1b[38;5;175m",
		warn:      "\x1b[38;5;214m",
		warnBg:    "\x1b[48;5;58m",
		err:       "\x1b[38;5;167m",
		errBg:     "\x1b[48;5;88m",
	},
}

// Current active theme (set by Initialize from CAN_LOG_THEME or by the CLI from config)
var currentTheme = "everforest"

// SetTheme configures the color scheme for log output. Unknown themes are ignored.
func SetTheme(theme string) {
	if _, ok := palettes[theme]; ok {
		currentTheme = theme
	}
}

func colors() palette {
	return palettes[currentTheme]
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  nomenclature  Catalog indexed  catalog=annotation count=100"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
	pool            buffer.Pool
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		pool:    buffer.NewPool(),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		pool:    enc.pool,
	}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	c := colors()
	final := enc.pool.Get()

	final.AppendString(c.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only show for WARN/ERROR with bold + background
	if lvl := levelColorString(ent.Level, c); lvl != "" {
		final.AppendString("  ")
		final.AppendString(lvl)
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(c.component)
		final.AppendString(ent.LoggerName)
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(c.fg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if kv := formatFields(fields, c); kv != "" {
		final.AppendString("  ")
		final.AppendString(kv)
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for WARN and above
func levelColorString(level zapcore.Level, c palette) string {
	switch {
	case level == zapcore.WarnLevel:
		return colorBold + c.warnBg + c.warn + "WARN" + colorReset
	case level >= zapcore.ErrorLevel:
		return colorBold + c.errBg + c.err + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// formatFields renders fields as key=value pairs sorted by key.
func formatFields(fields []zapcore.Field, c palette) string {
	if len(fields) == 0 {
		return ""
	}

	m := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(m)
	}

	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s%v%s", k, c.value, m.Fields[k], colorReset))
	}
	return strings.Join(parts, " ")
}
