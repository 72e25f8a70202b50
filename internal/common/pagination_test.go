package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationValidate(t *testing.T) {
	testCases := []struct {
		name  string
		p     Pagination
		valid bool
	}{
		{name: "valid", p: Pagination{Page: 1, PerPage: 10}, valid: true},
		{name: "zero page", p: Pagination{Page: 0, PerPage: 10}, valid: false},
		{name: "negative page", p: Pagination{Page: -1, PerPage: 10}, valid: false},
		{name: "zero per page", p: Pagination{Page: 1, PerPage: 0}, valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.valid {
				assert.NoError(t, err)
				return
			}

			var validationErr ValidationError
			assert.True(t, errors.As(err, &validationErr))
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 20, Pagination{Page: 3, PerPage: 10}.Offset())
	assert.Equal(t, 10, Pagination{Page: 1, PerPage: 10}.Limit())
}
