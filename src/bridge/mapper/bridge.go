// Package mapper converts between wire, entity and model representations.
package mapper

import (
	"context"
	"encoding/json"

	"github.com/gofrs/uuid"
	"github.com/uber/scene-bridge/src/bridge/entity"
	"github.com/uber/scene-bridge/src/bridge/internal/errors"
	"github.com/uber/scene-bridge/src/bridge/model"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// ConnectionToModel maps a Connection entity to its model equivalent.
func ConnectionToModel(c *entity.Connection) *model.Connection {
	return &model.Connection{
		UUID:             c.UUID,
		InitializeParams: c.InitializeParams,
		Conn:             c.Conn,
		ClientName:       string(c.ClientName),
		AssetsDir:        c.AssetsDir,
	}
}

// ModelToConnection maps a model Connection to its entity equivalent.
func ModelToConnection(m *model.Connection) (*entity.Connection, error) {
	return &entity.Connection{
		UUID:             m.UUID,
		InitializeParams: m.InitializeParams,
		Conn:             m.Conn,
		ClientName:       entity.ClientName(m.ClientName),
		AssetsDir:        m.AssetsDir,
	}, nil
}

// UUIDToConnection initializes a new Connection entity with the assigned uuid and connection.
func UUIDToConnection(u uuid.UUID, c *jsonrpc2.Conn) *entity.Connection {
	return &entity.Connection{
		UUID: u,
		Conn: c,
	}
}

// ContextToConnectionUUID extracts the host connection UUID from a context.
func ContextToConnectionUUID(c context.Context) (uuid.UUID, error) {
	id, ok := c.Value(entity.ConnectionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoConnectionFoundError{}
	}
	return id, nil
}

// ConnectionUUIDToContext returns a context carrying the host connection UUID.
func ConnectionUUIDToContext(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, entity.ConnectionContextKey, id)
}

// InitializeParamsToClientName extracts the host's client name, if sent.
func InitializeParamsToClientName(params *protocol.InitializeParams) entity.ClientName {
	if params == nil || params.ClientInfo == nil {
		return ""
	}
	return entity.ClientName(params.ClientInfo.Name)
}

// InitializeParamsToOptions decodes the host-specific initialization options.
// Options are optional, so absent values yield the zero value.
func InitializeParamsToOptions(params *protocol.InitializeParams) (entity.InitializationOptions, error) {
	opts := entity.InitializationOptions{}
	if params == nil || params.InitializationOptions == nil {
		return opts, nil
	}

	raw, err := json.Marshal(params.InitializationOptions)
	if err != nil {
		return opts, wrapErrParse(err)
	}
	if err := json.Unmarshal(raw, &opts); err != nil {
		return opts, wrapErrParse(err)
	}
	return opts, nil
}
