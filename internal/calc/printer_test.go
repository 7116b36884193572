package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	testCases := []struct {
		src    string
		print  string
		prefix string
	}{
		{"1", "1", "1"},
		{"1+2*3", "(+ 1 (* 2 3))", "+ 1 * 2 3"},
		{"(1+2)*3", "(* (+ 1 2) 3)", "* + 1 2 3"},
		{"8/2/2", "(/ (/ 8 2) 2)", "/ / 8 2 2"},
		{"4-2", "(+ 4 (* -1 2))", "+ 4 * -1 2"},
	}

	assert := assert.New(t)
	printer := &Printer{}
	for _, tc := range testCases {
		expr, err := NewExpression(tc.src)
		require.NoError(t, err, tc.src)

		assert.Equal(tc.print, printer.Print(expr.Tree()), tc.src)
		prefix, err := printer.Prefix(expr.Tree())
		assert.NoError(err)
		assert.Equal(tc.prefix, prefix, tc.src)
	}
}

func TestPrinterAfterCalculate(t *testing.T) {
	expr, err := NewExpression("1+2*3")
	require.NoError(t, err)
	_, err = expr.Calculate()
	require.NoError(t, err)

	printer := &Printer{}
	assert.Equal(t, "7", printer.Print(expr.Tree()))
}
