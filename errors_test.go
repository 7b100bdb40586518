package contentlens_test

import (
	"errors"
	"testing"

	"github.com/jswierad/contentlens"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := contentlens.Errorf(contentlens.ENOTFOUND, "analysis for %q not found", "https://example.com")

	assert.Equal(t, contentlens.ENOTFOUND, contentlens.ErrorCode(err))
	assert.Equal(t, "analysis for \"https://example.com\" not found", contentlens.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, contentlens.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, contentlens.EINTERNAL, contentlens.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, contentlens.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", contentlens.ErrorMessage(errors.New("boom")))
}
