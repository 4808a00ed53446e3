package handler

import (
	"fmt"
	"os"
	"strconv"

	"github.com/uber/scene-bridge/src/bridge/entity"
	"github.com/uber/scene-bridge/src/bridge/internal/serverinfofile"
	"go.uber.org/config"
)

const (
	_infoKeyPID       = "pid"
	_infoKeyAssetsDir = "assets-dir"
)

// Output process details so that a host shim can check the daemon is alive and which assets it serves by default.
// The JSON-RPC module adds its listening address to the same file independently.
func outputDaemonInfo(cfg config.Provider, infofile serverinfofile.ServerInfoFile) error {
	if err := infofile.UpdateField(_infoKeyPID, strconv.Itoa(os.Getpid())); err != nil {
		return fmt.Errorf("outputting %q to info file: %w", _infoKeyPID, err)
	}

	editorCfg := entity.EditorConfig{}
	if err := cfg.Get(entity.EditorConfigKey).Populate(&editorCfg); err != nil {
		return fmt.Errorf("loading editor config: %w", err)
	}
	if editorCfg.AssetsDir == "" {
		return nil
	}
	if err := infofile.UpdateField(_infoKeyAssetsDir, editorCfg.AssetsDir); err != nil {
		return fmt.Errorf("outputting %q to info file: %w", _infoKeyAssetsDir, err)
	}
	return nil
}
