//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"parking-facility/internal/pkg/errs"
)

func TestIsSeesMarks(t *testing.T) {
	sentinel := errs.New("lot full")
	cause := errs.New("no eligible spot")

	marked := errs.Mark(cause, sentinel)

	assert.True(t, errs.Is(marked, sentinel), "mark must match the sentinel")
	assert.True(t, errs.Is(marked, cause), "cause stays matchable")
	// The standard library cannot see marks; matching sentinels through
	// errors.Is silently turns business outcomes into internal errors.
	assert.False(t, errors.Is(marked, sentinel))
}

func TestIsWalksWrapChains(t *testing.T) {
	sentinel := errs.New("not found")

	wrapped := errs.Wrap(sentinel, "loading record")
	assert.True(t, errs.Is(wrapped, sentinel))

	stdWrapped := fmt.Errorf("outer: %w", sentinel)
	assert.True(t, errs.Is(stdWrapped, sentinel))
}

func TestMarkNilYieldsMark(t *testing.T) {
	sentinel := errs.New("boom")
	assert.Same(t, sentinel, errs.Mark(nil, sentinel))
	assert.NoError(t, errs.Wrap(nil, "ignored"))
}
