package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"campusdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestErrors_UnwrapToSentinel(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("phone"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: phone",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("product id", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: product id (cause: boom)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("discount"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: discount",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("quantity", cause),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: quantity (cause: boom)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("limit", 500, 0, 200),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is out of range: limit is 500, allowed [0, 200]",
		},
		{
			name:     "out of range keeps one line",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("percent", "12\n0", 0, 100, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is out of range: percent is 12 0, allowed [0, 100] (cause: boom)",
		},
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("order", "42"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 42",
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("order", "42", cause),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: order, ID is: 42 (cause: boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestErrors_SentinelsAreDistinct(t *testing.T) {
	sentinels := []error{errs.ErrValueIsRequired, errs.ErrValueIsInvalid, errs.ErrValueIsOutOfRange, errs.ErrObjectNotFound}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
