package controller

import (
	bridgedaemon "github.com/uber/scene-bridge/src/bridge/controller/bridge-daemon"
	commandchannel "github.com/uber/scene-bridge/src/bridge/controller/command-channel"
	"github.com/uber/scene-bridge/src/bridge/controller/editor"
	fileimport "github.com/uber/scene-bridge/src/bridge/controller/file-import"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(bridgedaemon.New),
	fx.Provide(commandchannel.New),
	fx.Provide(editor.New),
	fx.Provide(fileimport.New),
)
