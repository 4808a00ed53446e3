package bridgedaemon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/scene-bridge/src/bridge/controller/bridge-daemon/bridgedaemonmock"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"github.com/uber/scene-bridge/src/bridge/factory"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*jsonRPCRouter, *bridgedaemonmock.MockController) {
	c := bridgedaemonmock.NewMockController(gomock.NewController(t))
	return &jsonRPCRouter{bridgedaemon: c, uuid: factory.UUID(), stats: tally.NoopScope}, c
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name             string
		params           interface{}
		controllerResult *protocol.InitializeResult
		controllerError  error
		wantErr          bool
	}{
		{
			name:            "error from controller",
			params:          protocol.InitializeParams{},
			controllerError: errors.New("controller error"),
			wantErr:         true,
		},
		{
			name:             "no error from controller",
			params:           protocol.InitializeParams{},
			controllerResult: &protocol.InitializeResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c := newTestRouter(t)
			c.EXPECT().Initialize(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
					id, err := mapper.ContextToConnectionUUID(ctx)
					require.NoError(t, err)
					assert.Equal(t, r.uuid, id)
					return tt.controllerResult, tt.controllerError
				})

			replier := &recordingReplier{}
			err := r.HandleReq(context.Background(), replier.reply, factory.JSONRPCRequest(protocol.MethodInitialize, tt.params))
			assert.Equal(t, 1, replier.calls)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.controllerResult, replier.result)
			}
		})
	}

	t.Run("bad params", func(t *testing.T) {
		r, _ := newTestRouter(t)
		err := r.HandleReq(context.Background(), newMockReplier(), factory.JSONRPCRequest(protocol.MethodInitialize, "sample"))
		assert.Error(t, err)
	})
}

func TestInitialized(t *testing.T) {
	tests := []struct {
		name           string
		initializedErr error
		wantErr        bool
	}{
		{
			name:           "error from controller",
			initializedErr: errors.New("initialized error"),
			wantErr:        true,
		},
		{
			name: "no error from controller",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c := newTestRouter(t)
			c.EXPECT().Initialized(gomock.Any(), gomock.Any()).Return(tt.initializedErr)
			err := r.HandleReq(context.Background(), newMockReplier(), factory.JSONRPCNotification(protocol.MethodInitialized, protocol.InitializedParams{}))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShutdown(t *testing.T) {
	r, c := newTestRouter(t)
	c.EXPECT().Shutdown(gomock.Any()).Return(nil)
	assert.NoError(t, r.HandleReq(context.Background(), newMockReplier(), factory.JSONRPCRequest(protocol.MethodShutdown, nil)))

	c.EXPECT().Shutdown(gomock.Any()).Return(errors.New("sample"))
	assert.Error(t, r.HandleReq(context.Background(), newMockReplier(), factory.JSONRPCRequest(protocol.MethodShutdown, nil)))
}

func TestExit(t *testing.T) {
	r, c := newTestRouter(t)
	replier := &recordingReplier{}
	c.EXPECT().Exit(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		// The reply is sent before the controller starts exiting.
		assert.Equal(t, 1, replier.calls)
		return nil
	})
	assert.NoError(t, r.HandleReq(context.Background(), replier.reply, factory.JSONRPCNotification(protocol.MethodExit, nil)))
}

func TestRequestFullShutdown(t *testing.T) {
	r, c := newTestRouter(t)
	c.EXPECT().RequestFullShutdown(gomock.Any()).Return(nil)
	assert.NoError(t, r.HandleReq(context.Background(), newMockReplier(), factory.JSONRPCRequest(entity.MethodRequestFullShutdown, nil)))
}
