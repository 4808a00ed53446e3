package entity

// Host commands exposed through workspace/executeCommand.
const (
	CommandOpenEditor      = "3dviewer.openEditor"
	CommandOpenInEditor    = "3dviewer.openInEditor"
	CommandOpenURLInEditor = "3dviewer.openUrlInEditor"
	CommandOnMessage       = "3dviewer.onMessage"
	CommandDisplayString   = "3dviewer.displayString"
	CommandSendCommand     = "3dviewer.sendCommand"
	CommandImportFile      = "3dviewer.importFile"
)

// HostCommands lists every command advertised to the host, in registration order.
var HostCommands = []string{
	CommandOpenEditor,
	CommandOpenInEditor,
	CommandOpenURLInEditor,
	CommandOnMessage,
	CommandDisplayString,
	CommandSendCommand,
	CommandImportFile,
}

// Methods the daemon calls on the host shim.
const (
	MethodCreateSurface    = "bridge/createSurface"
	MethodSetSurfaceHTML   = "bridge/setSurfaceHtml"
	MethodPostMessage      = "bridge/postMessage"
	MethodAsSurfaceURI     = "bridge/asSurfaceUri"
	MethodDisposeSurface   = "bridge/disposeSurface"
	MethodShowInputBox     = "bridge/showInputBox"
	MethodOpenTextDocument = "bridge/openTextDocument"
)

// Methods the host shim calls on the daemon, beyond the standard lifecycle.
const (
	// MethodRequestFullShutdown directs the daemon to shut down on the next exit call.
	MethodRequestFullShutdown = "bridge/requestFullShutdown"
	// MethodSurfaceMessage forwards a message raised inside the surface.
	MethodSurfaceMessage = "bridge/surfaceMessage"
	// MethodDidDisposeSurface reports a surface closed by the user.
	MethodDidDisposeSurface = "bridge/didDisposeSurface"
)
