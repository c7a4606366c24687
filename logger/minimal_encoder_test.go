package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

// The minimal encoder must never silently drop fields.
func TestMinimalEncoderKeepsAllFields(t *testing.T) {
	encoder := newMinimalEncoder()

	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2025, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "nomenclature",
		Message:    "Catalog indexed",
	}

	fields := []zapcore.Field{
		zap.String(FieldCatalog, "annotation"),
		zap.Int(FieldCount, 100),
		zap.Bool("cached", true),
		zap.Float64("ratio", 0.5),
		zap.Strings("codes", []string{"KC", "Q"}),
		zap.Error(nil),
	}

	buf, err := encoder.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := stripANSI(buf.String())

	assert.True(t, strings.HasPrefix(out, "13:04:35"), "output should start with time: %q", out)
	assert.Contains(t, out, "nomenclature")
	assert.Contains(t, out, "Catalog indexed")
	assert.Contains(t, out, "catalog=annotation")
	assert.Contains(t, out, "count=100")
	assert.Contains(t, out, "cached=true")
	assert.Contains(t, out, "ratio=0.5")
	assert.Contains(t, out, "codes=[KC Q]")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestMinimalEncoderFieldOrderIsStable(t *testing.T) {
	encoder := newMinimalEncoder()
	entry := zapcore.Entry{Level: zapcore.InfoLevel, Time: time.Now(), Message: "m"}

	buf, err := encoder.EncodeEntry(entry, []zapcore.Field{
		zap.String("zeta", "z"),
		zap.String("alpha", "a"),
	})
	require.NoError(t, err)
	out := stripANSI(buf.String())

	assert.Less(t, strings.Index(out, "alpha=a"), strings.Index(out, "zeta=z"))
}

func TestMinimalEncoderLevels(t *testing.T) {
	encoder := newMinimalEncoder()

	tests := []struct {
		level zapcore.Level
		want  string
	}{
		{zapcore.InfoLevel, ""},
		{zapcore.DebugLevel, ""},
		{zapcore.WarnLevel, "WARN"},
		{zapcore.ErrorLevel, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			buf, err := encoder.EncodeEntry(zapcore.Entry{Level: tt.level, Time: time.Now(), Message: "msg"}, nil)
			require.NoError(t, err)
			out := stripANSI(buf.String())
			if tt.want == "" {
				assert.NotContains(t, out, "WARN")
				assert.NotContains(t, out, "ERROR")
			} else {
				assert.Contains(t, out, tt.want)
			}
		})
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("everforest")

	SetTheme("gruvbox")
	assert.Equal(t, "gruvbox", currentTheme)

	SetTheme("solarized")
	assert.Equal(t, "gruvbox", currentTheme, "unknown theme should be ignored")
}

func TestMinimalEncoderClone(t *testing.T) {
	encoder := newMinimalEncoder()
	clone := encoder.Clone()

	_, ok := clone.(*minimalEncoder)
	assert.True(t, ok, "Clone should return a *minimalEncoder")
}
