package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want float64
	}{
		{"text length", Text("abcd"), 4},
		{"empty text", Text(""), 0},
		{"numeric-looking text", Text("12345"), 5},
		{"accented text counts code units", Text("héllo"), 5},
		{"astral rune is two code units", Text("a😀"), 3},
		{"number doubled", Number(5), 10},
		{"zero", Number(0), 0},
		{"negative", Number(-2.5), -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Process(tt.in))
		})
	}
}

func TestProcessNilPanics(t *testing.T) {
	assert.Panics(t, func() { Process(nil) })
}
