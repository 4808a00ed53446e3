package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"github.com/uber/scene-bridge/src/bridge/factory"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

func TestRequestToInitializeParams(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		req := factory.JSONRPCRequest(protocol.MethodInitialize, protocol.InitializeParams{
			ClientInfo: &protocol.ClientInfo{Name: "Cursor"},
		})
		params, err := RequestToInitializeParams(req)
		require.NoError(t, err)
		assert.Equal(t, "Cursor", params.ClientInfo.Name)
	})

	t.Run("invalid params", func(t *testing.T) {
		req := factory.JSONRPCRequest(protocol.MethodInitialize, "not an object")
		_, err := RequestToInitializeParams(req)
		assert.ErrorIs(t, err, jsonrpc2.ErrParse)

		var wireErr *jsonrpc2.Error
		require.ErrorAs(t, err, &wireErr)
		assert.Equal(t, jsonrpc2.ParseError, wireErr.Code)
	})
}

func TestRequestToInitializedParams(t *testing.T) {
	req := factory.JSONRPCRequest(protocol.MethodInitialized, protocol.InitializedParams{})
	_, err := RequestToInitializedParams(req)
	assert.NoError(t, err)

	req = factory.JSONRPCRequest(protocol.MethodInitialized, 5)
	_, err = RequestToInitializedParams(req)
	assert.Error(t, err)
}

func TestRequestToExecuteCommandParams(t *testing.T) {
	t.Run("arguments kept as raw json", func(t *testing.T) {
		req := factory.JSONRPCRequest(protocol.MethodWorkspaceExecuteCommand, protocol.ExecuteCommandParams{
			Command:   entity.CommandImportFile,
			Arguments: []interface{}{"file:///a.gltf", map[string]interface{}{"k": 1}},
		})
		params, err := RequestToExecuteCommandParams(req)
		require.NoError(t, err)
		assert.Equal(t, entity.CommandImportFile, params.Command)
		require.Len(t, params.Arguments, 2)
		assert.Equal(t, json.RawMessage(`"file:///a.gltf"`), params.Arguments[0])
		assert.JSONEq(t, `{"k":1}`, string(params.Arguments[1].(json.RawMessage)))
	})

	t.Run("invalid params", func(t *testing.T) {
		req := factory.JSONRPCRequest(protocol.MethodWorkspaceExecuteCommand, []int{1})
		_, err := RequestToExecuteCommandParams(req)
		assert.ErrorIs(t, err, jsonrpc2.ErrParse)
	})
}

func TestRequestToSurfaceMessageParams(t *testing.T) {
	req := factory.JSONRPCNotification(entity.MethodSurfaceMessage, map[string]interface{}{
		"surfaceId": "s-1",
		"payload":   map[string]interface{}{"type": "ready"},
	})
	params, err := RequestToSurfaceMessageParams(req)
	require.NoError(t, err)
	assert.Equal(t, entity.SurfaceID("s-1"), params.SurfaceID)
	assert.JSONEq(t, `{"type":"ready"}`, string(params.Payload))

	_, err = RequestToSurfaceMessageParams(factory.JSONRPCNotification(entity.MethodSurfaceMessage, "x"))
	assert.Error(t, err)
}

func TestRequestToDidDisposeSurfaceParams(t *testing.T) {
	params, err := RequestToDidDisposeSurfaceParams(factory.JSONRPCNotification(entity.MethodDidDisposeSurface, entity.DidDisposeSurfaceParams{SurfaceID: "s-1"}))
	require.NoError(t, err)
	assert.Equal(t, entity.SurfaceID("s-1"), params.SurfaceID)

	_, err = RequestToDidDisposeSurfaceParams(factory.JSONRPCNotification(entity.MethodDidDisposeSurface, map[string]string{}))
	assert.ErrorIs(t, err, jsonrpc2.ErrParse)
}
