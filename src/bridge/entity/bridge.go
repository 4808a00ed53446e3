// Package entity contains the domain types for the scene-bridge daemon.
package entity

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

type keyType string

// ConnectionContextKey indicates the key to be used to identify the host connection UUID in the context.
const ConnectionContextKey keyType = "ConnectionUUID"

// EditorConfigKey is the key that contains the embedded editor configuration.
const EditorConfigKey = "editor"

// CommandChannelConfigKey is the key that contains the command channel configuration.
const CommandChannelConfigKey = "commandChannel"

// Connection entity representing a single host shim connection.
type Connection struct {
	UUID             uuid.UUID                  `json:"uuid" zap:"uuid"`
	InitializeParams *protocol.InitializeParams `json:"-" zap:"-"`
	Conn             *jsonrpc2.Conn             `json:"-" zap:"-"`
	ClientName       ClientName                 `json:"clientName" zap:"clientName"`
	// AssetsDir is the directory holding the bootstrap document and patch script for this host.
	AssetsDir string `json:"assetsDir" zap:"assetsDir"`
}

// InitializationOptions are the host-specific values sent with the initialize request.
type InitializationOptions struct {
	AssetsDir string `json:"assetsDir"`
}

// ClientName identifies the name that will be set in the initialization parameters for a given client.
type ClientName string

// EditorConfig configures how the embedded editor surface is created and bootstrapped.
type EditorConfig struct {
	// AssetsDir is used when the host does not send one during initialization.
	AssetsDir string `yaml:"assetsDir"`
	// BootstrapDocument is relative to AssetsDir.
	BootstrapDocument string `yaml:"bootstrapDocument"`
	// PatchScript is relative to AssetsDir.
	PatchScript string     `yaml:"patchScript"`
	ViewType    string     `yaml:"viewType"`
	Title       string     `yaml:"title"`
	ViewColumn  ViewColumn `yaml:"viewColumn"`
	// DisplayViewColumn is the pane used for DisplayString buffers.
	DisplayViewColumn ViewColumn `yaml:"displayViewColumn"`
	URLPrompt         string     `yaml:"urlPrompt"`
	URLPlaceholder    string     `yaml:"urlPlaceholder"`
}

// CommandChannelConfig configures command delivery into the surface.
type CommandChannelConfig struct {
	QueueSize int `yaml:"queueSize"`
}
