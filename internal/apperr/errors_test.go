package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/article-feed/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("page size is required")

	assert.Equal(t, "page size is required", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewValidationWrap(t *testing.T) {
	inner := errors.New("missing ']' in host")
	err := apperr.NewValidationWrap("bad request url", inner)

	assert.Equal(t, "bad request url: missing ']' in host", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestValidationError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("router: %w", fmt.Errorf("paginate: %w", apperr.NewValidation("bad link")))

	var ve *apperr.ValidationError
	require.ErrorAs(t, wrapped, &ve)
	assert.Equal(t, "bad link", ve.Message)
}

func TestValidationError_AbsentFromPlainErrors(t *testing.T) {
	wrapped := fmt.Errorf("storage: %w", errors.New("connection refused"))

	var ve *apperr.ValidationError
	assert.False(t, errors.As(wrapped, &ve))
}
