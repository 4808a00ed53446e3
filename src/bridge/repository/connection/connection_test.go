package connection

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"github.com/uber/scene-bridge/src/bridge/factory"
	"github.com/uber/scene-bridge/src/bridge/internal/errors"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestConnectionRepository(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))

	t.Run("should Set and Get successfully", func(t *testing.T) {
		id := factory.UUID()
		repository := New(testScope)

		err := repository.Set(context.Background(), &entity.Connection{UUID: id, AssetsDir: "/ext/media"})
		require.NoError(t, err)
		val, err := repository.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, val.UUID)
		assert.Equal(t, "/ext/media", val.AssetsDir)
	})

	t.Run("should fail to get something that was not Set", func(t *testing.T) {
		repository := New(testScope)

		id := uuid.Must(uuid.NewV4())
		_, err := repository.Get(context.Background(), id)
		require.Error(t, err)
		var nf *errors.UUIDNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, id, nf.UUID)
	})

	t.Run("should refuse a nil connection", func(t *testing.T) {
		repository := New(testScope)
		assert.Error(t, repository.Set(context.Background(), nil))
	})

	t.Run("should get from context", func(t *testing.T) {
		id := factory.UUID()
		repository := New(testScope)
		require.NoError(t, repository.Set(context.Background(), &entity.Connection{UUID: id}))

		val, err := repository.GetFromContext(mapper.ConnectionUUIDToContext(context.Background(), id))
		require.NoError(t, err)
		assert.Equal(t, id, val.UUID)

		_, err = repository.GetFromContext(context.Background())
		assert.Error(t, err)
	})

	t.Run("should Delete and count", func(t *testing.T) {
		repository := New(testScope)
		ids := []uuid.UUID{factory.UUID(), factory.UUID(), factory.UUID()}
		for _, id := range ids {
			require.NoError(t, repository.Set(context.Background(), &entity.Connection{UUID: id}))
		}

		count, err := repository.ConnectionCount(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		require.NoError(t, repository.Delete(context.Background(), ids[0]))
		count, err = repository.ConnectionCount(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		gauges := testScope.Snapshot().Gauges()
		require.Contains(t, gauges, "testing.active_connections+")
		assert.Equal(t, float64(2), gauges["testing.active_connections+"].Value())
	})
}
