package bridgedaemon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/scene-bridge/src/bridge/controller/bridge-daemon/bridgedaemonmock"
	"github.com/uber/scene-bridge/src/bridge/factory"
	"github.com/uber/scene-bridge/src/bridge/internal/jsonrpcfx/jsonrpcfxmock"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"github.com/uber/scene-bridge/src/bridge/mock/jsonrpc2mock"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	t.Run("registers connection manager", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jsonRPCMock := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)
		jsonRPCMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)

		h, err := New(bridgedaemonmock.NewMockController(ctrl), jsonRPCMock, tally.NoopScope)
		require.NoError(t, err)
		assert.IsType(t, &jsonRPCConnectionManager{}, h)
	})

	t.Run("registration failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jsonRPCMock := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)
		jsonRPCMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(errors.New("already registered"))

		_, err := New(bridgedaemonmock.NewMockController(ctrl), jsonRPCMock, tally.NoopScope)
		assert.Error(t, err)
	})
}

func TestNewConnection(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	c := bridgedaemonmock.NewMockController(ctrl)
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))

	mgr := jsonRPCConnectionManager{
		stats: testScope,
		ctrl:  c,
	}

	mockConn := jsonrpc2mock.NewMockConn(ctrl)
	var conn jsonrpc2.Conn = mockConn

	t.Run("create success", func(t *testing.T) {
		id := factory.UUID()
		c.EXPECT().InitSession(gomock.Any(), &conn).Return(id, nil)
		router, err := mgr.NewConnection(ctx, &conn)
		require.NoError(t, err)
		assert.IsType(t, &jsonRPCRouter{}, router)
		assert.Equal(t, id, router.UUID())
		assert.Equal(t, int64(1), testScope.Snapshot().Counters()["testing.connections_opened+"].Value())
	})

	t.Run("create failure", func(t *testing.T) {
		c.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(factory.UUID(), errors.New("sample"))
		_, err := mgr.NewConnection(ctx, &conn)
		assert.Error(t, err)
	})
}

func TestRemoveConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := bridgedaemonmock.NewMockController(ctrl)
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	mgr := jsonRPCConnectionManager{stats: testScope, ctrl: c}

	id := factory.UUID()
	c.EXPECT().EndSession(gomock.Any(), id).DoAndReturn(func(ctx context.Context, got interface{}) error {
		fromCtx, err := mapper.ContextToConnectionUUID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, id, fromCtx)
		return errors.New("sample")
	})
	mgr.RemoveConnection(context.Background(), id)

	counters := testScope.Snapshot().Counters()
	assert.Equal(t, int64(1), counters["testing.connections_closed+"].Value())
	assert.Equal(t, int64(1), counters["testing.connection_cleanup_errors+"].Value())
}

func newMockReplier() jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		return err
	}
}

// recordingReplier captures what a route replied with.
type recordingReplier struct {
	calls  int
	result interface{}
	err    error
}

func (r *recordingReplier) reply(ctx context.Context, result interface{}, err error) error {
	r.calls++
	r.result = result
	r.err = err
	return err
}
