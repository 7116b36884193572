package calc

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
	assert.False(r.HadRuntimeError())
}

func TestSimpleReporterSendRuntimeError(t *testing.T) {
	assert := assert.New(t)
	err := NewEvalError(0, "+", "Operator needs two operands.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.False(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := NewParseError(tokEOF(3), "Expect expression.")
	err2 := NewEvalError(0, "+", "Operator needs two operands.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
	assert.True(r.HadRuntimeError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)
	err1 := NewScanError(1, "Unexpected character 'x'.")
	err2 := NewEvalError(0, "+", "Operator needs two operands.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	r.Reset()
	assert.False(r.HadRuntimeError())
	assert.False(r.HadError())
}

func TestColorReporterWithoutTerminal(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	err := NewScanError(2, "Malformed sign run '--'.")
	var out strings.Builder
	r := NewColorReporter(&out)
	r.Report(err)

	assert.Equal(t, "[col 2] Error: Malformed sign run '--'.\n", out.String())
	assert.True(t, r.HadError())
}
