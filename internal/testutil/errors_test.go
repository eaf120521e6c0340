package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrMockGitFailed", ErrMockGitFailed, "git command failed"},
		{"ErrMockNetwork", ErrMockNetwork, "network error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.err)
		})
	}
	assert.NotErrorIs(t, errors.New("wrapped: network error"), ErrMockNetwork) //nolint:err113 // test-only
}
