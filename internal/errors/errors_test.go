package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	err := NewAppError(ErrTypeParsing, "bad row", nil)
	assert.Equal(t, "[PARSING] bad row", err.Error())

	wrapped := NewAppError(ErrTypeStorage, "open failed", fs.ErrPermission)
	assert.Equal(t, "[STORAGE] open failed: permission denied", wrapped.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := NewNotFoundError("productos.csv", cause)

	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeNotFound, appErr.Type)
	assert.Equal(t, "productos.csv", appErr.Context["path"])
}

func TestIsType(t *testing.T) {
	err := NewExportError("informe.txt", fs.ErrPermission)

	assert.True(t, IsType(err, ErrTypeExport))
	assert.False(t, IsType(err, ErrTypeParsing))
	assert.False(t, IsType(errors.New("plain"), ErrTypeExport))

	// Wrapped AppErrors are still recognized.
	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsType(wrapped, ErrTypeExport))
}

func TestWithContext(t *testing.T) {
	err := NewParsingError("bad quantity", nil).WithContext("row", 7)
	assert.Equal(t, 7, err.Context["row"])
}
