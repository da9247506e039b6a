package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePriceDB(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.db")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPrices(t *testing.T) {
	path := writePriceDB(t, "P 2015-10-23 \"MUTF2351\" $5.42\nP 2015-10-25 AAPL $313.38\n")

	var buf bytes.Buffer
	err := runPrices(&buf, path, false)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `2015-10-23 "MUTF2351" $5.42`)
	assert.Contains(t, out, "2015-10-25 AAPL $313.38")
	assert.Contains(t, out, "2 price record(s)")
}

func TestRunPricesLatest(t *testing.T) {
	path := writePriceDB(t, "P 2015-10-23 \"MUTF2351\" $5.42\nP 2015-10-25 \"MUTF2351\" $5.98\n")

	var buf bytes.Buffer
	err := runPrices(&buf, path, true)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `2015-10-25 "MUTF2351" $5.98 (0.56)`)
	assert.NotContains(t, out, "2015-10-23", "only the latest record per symbol")
}

func TestRunPricesEmptyFile(t *testing.T) {
	path := writePriceDB(t, "")

	var buf bytes.Buffer
	err := runPrices(&buf, path, false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "0 price record(s)")
}

func TestRunPricesSyntaxError(t *testing.T) {
	path := writePriceDB(t, "P 2015-10-23 AAPL $310.00\nP 2015-13\n")

	var buf bytes.Buffer
	err := runPrices(&buf, path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2:", "error carries line:column of the failure")
}

func TestRunPricesLeftoverInput(t *testing.T) {
	path := writePriceDB(t, "2015-10-20 * Payee\n")

	var buf bytes.Buffer
	err := runPrices(&buf, path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparsed input remains")
}

func TestRunPricesMissingFile(t *testing.T) {
	err := runPrices(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.db"), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
