package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("did not find expected key")
	err := NewParseError("plrefresh.yaml", "yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "plrefresh.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse yaml config plrefresh.yaml:12: did not find expected key", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("plrefresh.conf", "", 0, ErrUnsupportedFormat)

	require.ErrorIs(t, err, ErrUnsupportedFormat)
	require.Equal(t, "parse config plrefresh.conf: unsupported config format", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("footer.trigger_percent", "must be greater than 0", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "footer.trigger_percent", validationErr.Field)
	require.Contains(t, err.Error(), "must be greater than 0")
}

func TestStoreErrorIncludesContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewStoreError("save", "/tmp/last_updated.json", "feed", underlying)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, "save", storeErr.Op)
	require.Equal(t, "feed", storeErr.Key)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "store save /tmp/last_updated.json [feed]: permission denied", err.Error())
}

func TestNilErrorsAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var storeErr *StoreError
	require.Empty(t, parseErr.Error())
	require.NoError(t, storeErr.Unwrap())
}
