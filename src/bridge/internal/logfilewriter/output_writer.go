package logfilewriter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uber/scene-bridge/src/bridge/internal/fs"
	"github.com/uber/scene-bridge/src/bridge/internal/serverinfofile"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	_fmtOutputKey = "output:%s"

	// SurfaceOutputName names the output holding messages raised by the embedded editor.
	SurfaceOutputName = "scene-bridge-surface"
)

// Module provides the surface output Writer.
var Module = fx.Provide(NewSurfaceOutput)

// Writer is a human readable output that a user can tail.
type Writer interface {
	io.Writer
}

// Params define the dependencies for SetupOutputWriter.
type Params struct {
	fx.In

	FS             fs.BridgeFS
	Lifecycle      fx.Lifecycle
	ServerInfoFile serverinfofile.ServerInfoFile
}

// NewSurfaceOutput creates the output that receives messages raised by the embedded editor.
func NewSurfaceOutput(p Params) (Writer, error) {
	return SetupOutputWriter(p, SurfaceOutputName)
}

// SetupOutputWriter creates a writer for human readable output in a temporary file.
// The file path is stored in the server info file so that the host shim can show it.
func SetupOutputWriter(p Params, name string) (Writer, error) {
	logsDirPath := filepath.Join(os.TempDir(), name)
	if err := p.FS.MkdirAll(logsDirPath); err != nil {
		return nil, err
	}

	logFile, err := p.FS.TempFile(logsDirPath, "")
	if err != nil {
		return nil, err
	}

	if err := p.ServerInfoFile.UpdateField(fmt.Sprintf(_fmtOutputKey, name), logFile.Name()); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("advertising %s output: %w", name, err)
	}

	// Write via a logger for formatting, timestamp, and buffering.
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(logFile),
		zap.InfoLevel,
	)
	outputLogger := zap.New(core).Sugar()

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			outputLogger.Sync()
			logFile.Close()
			return p.FS.Remove(logFile.Name())
		},
	})

	return &loggerWriter{logger: outputLogger}, nil
}

type loggerWriter struct {
	logger *zap.SugaredLogger
}

// Write implements the io.Writer interface by sending data to the given logger.
func (o *loggerWriter) Write(p []byte) (n int, err error) {
	// Incoming data may contain multiple lines, including blank ones.
	for _, line := range strings.Split(string(p), "\n") {
		if len(line) > 0 {
			o.logger.Info(line)
		}
	}

	return len(p), nil
}
