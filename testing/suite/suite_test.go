package suite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectFailure(t *testing.T) {
	errTimeout := errors.New("dial tcp: i/o timeout")

	t.Run("Keeps the connect error after a clean purge", func(t *testing.T) {
		// Given: a purge that succeeds
		purged := false

		// When: the failure is described
		msg := connectFailure(errTimeout, func() error {
			purged = true
			return nil
		})

		// Then: the container was purged and the connect error is reported
		assert.True(t, purged)
		assert.Equal(t, "could not connect to redis: dial tcp: i/o timeout", msg)
	})

	t.Run("Reports both errors when the purge fails", func(t *testing.T) {
		msg := connectFailure(errTimeout, func() error { return errors.New("no such container") })

		assert.Equal(t, "could not connect to redis: dial tcp: i/o timeout; could not purge resource: no such container", msg)
	})
}

func TestNew(t *testing.T) {
	// Given: a throwaway redis container
	ctx, st := New(t)

	// Then: the client is connected
	assert.NoError(t, st.Storage.Ping(ctx).Err())
}
