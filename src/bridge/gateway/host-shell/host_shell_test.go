package hostshell

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"github.com/uber/scene-bridge/src/bridge/factory"
	"github.com/uber/scene-bridge/src/bridge/mapper"
	"github.com/uber/scene-bridge/src/bridge/mock/jsonrpc2mock"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func getTestGateway(t *testing.T) (Gateway, *jsonrpc2mock.MockConn, context.Context) {
	ctrl := gomock.NewController(t)
	g := New(zap.NewNop())

	id := factory.UUID()
	mockConn := jsonrpc2mock.NewMockConn(ctrl)
	var conn jsonrpc2.Conn = mockConn
	require.NoError(t, g.RegisterClient(context.Background(), id, &conn))

	return g, mockConn, mapper.ConnectionUUIDToContext(context.Background(), id)
}

func TestRegisterClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	g := gateway{
		clients:     make(map[uuid.UUID]protocol.Client),
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      zap.NewNop(),
	}

	for i := 0; i < 10; i++ {
		mockConn := jsonrpc2mock.NewMockConn(ctrl)
		var conn jsonrpc2.Conn = mockConn
		err := g.RegisterClient(ctx, factory.UUID(), &conn)
		assert.NoError(t, err)
	}

	assert.Len(t, g.clients, 10)
	assert.Len(t, g.connections, 10)

	t.Run("nil connection", func(t *testing.T) {
		assert.Error(t, g.RegisterClient(ctx, factory.UUID(), nil))
		var conn jsonrpc2.Conn
		assert.Error(t, g.RegisterClient(ctx, factory.UUID(), &conn))
	})
}

func TestDeregisterClient(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	g := gateway{
		clients:     make(map[uuid.UUID]protocol.Client),
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      zap.NewNop(),
	}

	for i := 0; i < 10; i++ {
		mockConn := jsonrpc2mock.NewMockConn(ctrl)
		var conn jsonrpc2.Conn = mockConn
		require.NoError(t, g.RegisterClient(ctx, factory.UUID(), &conn))
	}

	for key := range g.clients {
		assert.NotNil(t, g.clients[key])
		assert.NoError(t, g.DeregisterClient(ctx, key))
		assert.Nil(t, g.clients[key])
	}
	assert.Len(t, g.clients, 0)
	assert.Len(t, g.connections, 0)
}

func TestMissingClient(t *testing.T) {
	g := New(zap.NewNop())

	t.Run("no uuid in context", func(t *testing.T) {
		_, err := g.CreateSurface(context.Background(), &entity.CreateSurfaceParams{})
		assert.Error(t, err)
	})

	t.Run("unknown uuid", func(t *testing.T) {
		ctx := mapper.ConnectionUUIDToContext(context.Background(), factory.UUID())
		assert.Error(t, g.LogMessage(ctx, &protocol.LogMessageParams{}))
		assert.Error(t, g.ShowMessage(ctx, &protocol.ShowMessageParams{}))
		assert.Error(t, g.RegisterCapability(ctx, &protocol.RegistrationParams{}))
		assert.Error(t, g.UnregisterCapability(ctx, &protocol.UnregistrationParams{}))
		_, err := g.PostMessage(ctx, &entity.PostMessageParams{})
		assert.Error(t, err)
	})
}

func TestCreateSurface(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)
	params := &entity.CreateSurfaceParams{
		ViewType:      "threeJsEditor",
		Title:         "THREE.js Editor",
		ViewColumn:    entity.ViewColumnActive,
		EnableScripts: true,
	}

	t.Run("call success", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Any(), entity.MethodCreateSurface, params, gomock.Any()).DoAndReturn(
			func(ctx context.Context, method string, params, result interface{}) (jsonrpc2.ID, error) {
				result.(*entity.CreateSurfaceResult).SurfaceID = "s-1"
				return jsonrpc2.NewNumberID(1), nil
			})
		id, err := g.CreateSurface(ctx, params)
		assert.NoError(t, err)
		assert.Equal(t, entity.SurfaceID("s-1"), id)
	})

	t.Run("empty surface id", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Any(), entity.MethodCreateSurface, params, gomock.Any()).Return(jsonrpc2.NewNumberID(2), nil)
		_, err := g.CreateSurface(ctx, params)
		assert.Error(t, err)
	})

	t.Run("call failure", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Any(), entity.MethodCreateSurface, params, gomock.Any()).Return(jsonrpc2.NewNumberID(3), errors.New("sample"))
		_, err := g.CreateSurface(ctx, params)
		assert.ErrorContains(t, err, entity.MethodCreateSurface)
	})
}

func TestSetSurfaceHTML(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)
	params := &entity.SetSurfaceHTMLParams{SurfaceID: "s-1", HTML: "<html></html>"}

	mockConn.EXPECT().Call(gomock.Any(), entity.MethodSetSurfaceHTML, params, nil).Return(jsonrpc2.NewNumberID(1), nil)
	assert.NoError(t, g.SetSurfaceHTML(ctx, params))

	mockConn.EXPECT().Call(gomock.Any(), entity.MethodSetSurfaceHTML, params, nil).Return(jsonrpc2.NewNumberID(2), errors.New("sample"))
	assert.Error(t, g.SetSurfaceHTML(ctx, params))
}

func TestPostMessage(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)
	params := &entity.PostMessageParams{SurfaceID: "s-1", Message: entity.SurfaceMessage{Eval: "editor.clear()"}}

	t.Run("accepted", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Any(), entity.MethodPostMessage, params, gomock.Any()).DoAndReturn(
			func(ctx context.Context, method string, params, result interface{}) (jsonrpc2.ID, error) {
				*result.(*bool) = true
				return jsonrpc2.NewNumberID(1), nil
			})
		ok, err := g.PostMessage(ctx, params)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejected", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Any(), entity.MethodPostMessage, params, gomock.Any()).Return(jsonrpc2.NewNumberID(2), nil)
		ok, err := g.PostMessage(ctx, params)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("failure", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Any(), entity.MethodPostMessage, params, gomock.Any()).Return(jsonrpc2.NewNumberID(3), errors.New("sample"))
		ok, err := g.PostMessage(ctx, params)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestAsSurfaceURI(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)
	params := &entity.AsSurfaceURIParams{SurfaceID: "s-1", URI: uri.File("/ext/media/editorPatch.js")}

	mockConn.EXPECT().Call(gomock.Any(), entity.MethodAsSurfaceURI, params, gomock.Any()).DoAndReturn(
		func(ctx context.Context, method string, params, result interface{}) (jsonrpc2.ID, error) {
			*result.(*string) = "vscode-resource:/ext/media/editorPatch.js"
			return jsonrpc2.NewNumberID(1), nil
		})
	result, err := g.AsSurfaceURI(ctx, params)
	assert.NoError(t, err)
	assert.Equal(t, "vscode-resource:/ext/media/editorPatch.js", result)

	mockConn.EXPECT().Call(gomock.Any(), entity.MethodAsSurfaceURI, params, gomock.Any()).Return(jsonrpc2.NewNumberID(2), nil)
	_, err = g.AsSurfaceURI(ctx, params)
	assert.Error(t, err)
}

func TestDisposeSurface(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)
	params := &entity.DisposeSurfaceParams{SurfaceID: "s-1"}

	mockConn.EXPECT().Call(gomock.Any(), entity.MethodDisposeSurface, params, nil).Return(jsonrpc2.NewNumberID(1), nil)
	assert.NoError(t, g.DisposeSurface(ctx, params))
}

func TestShowInputBox(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)
	params := &entity.ShowInputBoxParams{Prompt: "Enter URL to open", PlaceHolder: "http://..."}

	t.Run("value entered", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Any(), entity.MethodShowInputBox, params, gomock.Any()).DoAndReturn(
			func(ctx context.Context, method string, params, result interface{}) (jsonrpc2.ID, error) {
				value := "http://example.com/a.glb"
				*result.(**string) = &value
				return jsonrpc2.NewNumberID(1), nil
			})
		result, err := g.ShowInputBox(ctx, params)
		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "http://example.com/a.glb", *result)
	})

	t.Run("cancelled", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Any(), entity.MethodShowInputBox, params, gomock.Any()).Return(jsonrpc2.NewNumberID(2), nil)
		result, err := g.ShowInputBox(ctx, params)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestOpenTextDocument(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)
	params := &entity.OpenTextDocumentParams{LanguageID: "json", Content: "{}", ViewColumn: entity.ViewColumnThree, PreserveFocus: true}

	mockConn.EXPECT().Call(gomock.Any(), entity.MethodOpenTextDocument, params, nil).Return(jsonrpc2.NewNumberID(1), nil)
	assert.NoError(t, g.OpenTextDocument(ctx, params))
}

func TestRegistrations(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)
	reg := &protocol.RegistrationParams{Registrations: []protocol.Registration{{ID: "r-1", Method: entity.MethodSurfaceMessage}}}
	unreg := &protocol.UnregistrationParams{Unregisterations: []protocol.Unregistration{{ID: "r-1", Method: entity.MethodSurfaceMessage}}}

	mockConn.EXPECT().Call(gomock.Any(), protocol.MethodClientRegisterCapability, reg, nil).Return(jsonrpc2.NewNumberID(1), nil)
	assert.NoError(t, g.RegisterCapability(ctx, reg))

	mockConn.EXPECT().Call(gomock.Any(), protocol.MethodClientUnregisterCapability, unreg, nil).Return(jsonrpc2.NewNumberID(2), nil)
	assert.NoError(t, g.UnregisterCapability(ctx, unreg))
}

func TestNotifications(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)

	logParams := &protocol.LogMessageParams{Type: protocol.MessageTypeInfo, Message: "hello"}
	mockConn.EXPECT().Notify(gomock.Any(), protocol.MethodWindowLogMessage, logParams).Return(nil)
	assert.NoError(t, g.LogMessage(ctx, logParams))

	showParams := &protocol.ShowMessageParams{Type: protocol.MessageTypeWarning, Message: "hello"}
	mockConn.EXPECT().Notify(gomock.Any(), protocol.MethodWindowShowMessage, showParams).Return(errors.New("sample"))
	assert.Error(t, g.ShowMessage(ctx, showParams))
}
