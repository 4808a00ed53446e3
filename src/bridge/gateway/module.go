package gateway

import (
	hostshell "github.com/uber/scene-bridge/src/bridge/gateway/host-shell"
	"go.uber.org/fx"
)

// Module provides the outbound gateways.
var Module = fx.Options(
	fx.Provide(hostshell.New),
)
