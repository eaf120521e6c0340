package ctxutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gitdeck/internal/ctxutil"
	"github.com/mrz1836/gitdeck/internal/git"
)

func TestCanceled(t *testing.T) {
	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Minute))
	defer cancelExpired()
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context //nolint:containedctx // table input
		want error
	}{
		{"live context", context.Background(), nil},
		{"canceled by caller", canceled, context.Canceled},
		{"deadline passed", expired, context.DeadlineExceeded},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ctxutil.Canceled(tc.ctx))
		})
	}
}

func TestCanceled_GitIsNeverLaunched(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A missing binary would fail to launch; the canceled context wins first.
	_, err := git.Invoke(ctx, "gitdeck-no-such-binary", "", "status")
	require.ErrorIs(t, err, context.Canceled)

	_, err = git.Stream(ctx, "gitdeck-no-such-binary", "", []string{"clone"}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
