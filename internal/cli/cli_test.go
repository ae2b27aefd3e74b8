package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/exercises/days"
	"github.com/marcodamonte/exercises/square"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFormatCmd(t *testing.T) {
	out, err := execute(t, "format", "Hello Gopher")
	require.NoError(t, err)
	assert.Equal(t, "HELLO GOPHER\n", out)

	out, err = execute(t, "format", "--lower", "Hello Gopher")
	require.NoError(t, err)
	assert.Equal(t, "hello gopher\n", out)
}

func TestConcatCmd(t *testing.T) {
	out, err := execute(t, "concat", "1,2", "3", "4,5")
	require.NoError(t, err)
	assert.Equal(t, "1,2,3,4,5\n", out)

	out, err = execute(t, "concat")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestVehicleCmd(t *testing.T) {
	out, err := execute(t, "vehicle", "--make", "Honda", "--year", "2018")
	require.NoError(t, err)
	assert.Equal(t, "Make: Honda, Year: 2018\n", out)

	out, err = execute(t, "vehicle", "--make", "Toyota", "--year", "2020", "--model", "Corolla")
	require.NoError(t, err)
	assert.Equal(t, "Make: Toyota, Year: 2020\nModel: Corolla\n", out)

	_, err = execute(t, "vehicle", "--year", "2020")
	assert.Error(t, err, "--make is required")
}

func TestProcessCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"process", "abcd"}, "4\n"},
		{[]string{"process", "5"}, "10\n"},
		{[]string{"process", "2.25"}, "4.5\n"},
		{[]string{"process", "--text", "12345"}, "5\n"},
	}

	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestDayCmd(t *testing.T) {
	out, err := execute(t, "day", "saturday")
	require.NoError(t, err)
	assert.Equal(t, "Weekend\n", out)

	out, err = execute(t, "day", "Wednesday")
	require.NoError(t, err)
	assert.Equal(t, "Weekday\n", out)

	_, err = execute(t, "day", "someday")
	assert.ErrorIs(t, err, days.ErrUnknownDay)
}

func TestRatingsCmd(t *testing.T) {
	path := writeDataset(t, `
items:
  - {title: Dune, rating: 4.5}
  - {title: Eragon, rating: 2}
  - {title: Emma, rating: 4}
`)

	out, err := execute(t, "ratings", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "Dune (4.5)\nEmma (4)\n", out)

	_, err = execute(t, "ratings")
	assert.Error(t, err, "--file is required")
}

func TestMostExpensiveCmd(t *testing.T) {
	path := writeDataset(t, `
products:
  - {name: A, price: 10}
  - {name: B, price: 20}
  - {name: C, price: 20}
`)

	out, err := execute(t, "most-expensive", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "B (20)\n", out)

	out, err = execute(t, "most-expensive", "--file", writeDataset(t, "products: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "no products\n", out)
}

func TestSquareCmd(t *testing.T) {
	out, err := execute(t, "square", "--delay", "10ms", "2", "3", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "2^2 = 4\n3^2 = 9\n0.5^2 = 0.25\n", out)
}

func TestSquareCmdNegative(t *testing.T) {
	_, err := execute(t, "square", "--delay", "10ms", "--", "4", "-1")
	require.ErrorIs(t, err, square.ErrInvalidArgument)
}

func TestSquareCmdNotANumber(t *testing.T) {
	_, err := execute(t, "square", "two")
	assert.Error(t, err)
}

func TestSquareCmdUsesConfigDelay(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "exercises.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("square:\n  delay: 5ms\nlog:\n  level: error\n"), 0o600))

	out, err := execute(t, "--config", cfg, "square", "7")
	require.NoError(t, err)
	assert.Equal(t, "7^2 = 49\n", out)
}

func TestBadConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "format", "x")
	assert.Error(t, err)
}

func TestDemoCmd(t *testing.T) {
	out, err := execute(t, "demo", "--delay", "5ms")
	require.NoError(t, err)

	for _, want := range []string{
		"HELLO, GOPHER",
		"hello, gopher",
		"The Go Programming Language (4.8)",
		"Concurrency in Go (4)",
		"[1 2 3 4 5]",
		"Make: Toyota, Year: 2020\nModel: Corolla\n",
		"Monitor (300)",
		"Saturday → Weekend",
		"4^2 = 16, 1.5^2 = 2.25",
		"invalid argument",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Untitled Draft")
}
