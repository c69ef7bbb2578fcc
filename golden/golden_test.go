// Package golden drives every fixture under testdata/*.lox through the
// real interpreter entry point and diffs stdout/stderr/exit code
// against the companion golden files, the way the teacher's
// test/collect.go + test/compare.go reference-vs-target harness does,
// adapted here to compare against recorded expectations instead of a
// second binary since there is no external reference implementation
// for this core.
package golden

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jlox-go/lox"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

func TestGoldenScripts(t *testing.T) {
	scripts, err := doublestar.FilepathGlob("../testdata/*.lox")
	require.NoError(t, err)
	require.NotEmpty(t, scripts, "expected at least one fixture under testdata/")

	for _, script := range scripts {
		script := script
		name := strings.TrimSuffix(filepath.Base(script), ".lox")

		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(script)
			require.NoError(t, err)

			base := strings.TrimSuffix(script, ".lox")
			expectedStdout := readIfExists(t, base+".expected")
			expectedExit := readExitCode(t, base+".exit")
			expectedErrContains := readIfExists(t, base+".expected_err_contains")

			var stdout, stderr bytes.Buffer
			interpreter := lox.New(&stdout, &stderr)
			interpreter.Run(string(source))

			exit := 0
			if interpreter.HadError() || interpreter.HadRuntimeError() {
				exit = 1
			}

			ok := assert.Equal(t, expectedStdout, stdout.String(), "stdout mismatch") &&
				assert.Equal(t, expectedExit, exit, "exit code mismatch")
			if expectedErrContains != "" {
				ok = assert.Contains(t, stderr.String(), strings.TrimSpace(expectedErrContains)) && ok
			}

			if ok {
				passColor.Fprintf(os.Stdout, "  [passed] %s\n", name)
			} else {
				failColor.Fprintf(os.Stdout, "  [failed] %s\n", name)
			}
		})
	}
}

func readIfExists(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}

func readExitCode(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	require.NoError(t, err)
	return n
}
