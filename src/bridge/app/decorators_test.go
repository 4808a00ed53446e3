package app

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/scene-bridge/src/bridge/internal/fs"
	"github.com/uber/scene-bridge/src/bridge/internal/fs/fsmock"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEnv(t *testing.T) {
	tests := []struct {
		name      string
		setEnvKey string
		setEnvVal string
		expectVal string
	}{
		{
			name:      "local",
			expectVal: EnvLocal,
		},
		{
			name:      "development",
			setEnvKey: _envBridgeEnvironment,
			setEnvVal: "development",
			expectVal: EnvDevelopment,
		},
		{
			name:      "unknown value",
			setEnvKey: _envBridgeEnvironment,
			setEnvVal: "production",
			expectVal: EnvLocal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnvKey != "" {
				t.Setenv(tt.setEnvKey, tt.setEnvVal)
			}

			fxtest.New(
				t,
				fx.Provide(func() Context {
					return Context{
						Environment:        EnvLocal,
						RuntimeEnvironment: EnvLocal,
					}
				}),
				fx.Decorate(decorateEnvContext),
				fx.Invoke(func(ctx Context) {
					require.Equal(t, tt.expectVal, ctx.Environment, "unexpected environment")
					require.Equal(t, tt.expectVal, ctx.RuntimeEnvironment, "unexpected runtime environment")
				}),
			).RequireStart().RequireStop()
		})
	}
}

func TestDecorateConfigProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Run("no errors", func(t *testing.T) {
		fsMock := fsmock.NewMockBridgeFS(ctrl)
		fsMock.EXPECT().MkdirAll("/tmp/foo").Return(nil)

		fxtest.New(
			t,
			fx.Provide(func() fs.BridgeFS {
				return fsMock
			}),
			fx.Provide(func() config.Provider {
				p, _ := config.NewStaticProvider(map[string]interface{}{
					"logging": map[string]interface{}{
						"outputPaths": []string{
							"/tmp/foo/myfile1.log",
						},
					},
				})
				return p
			}),
			fx.Provide(func() Context {
				return Context{
					RuntimeEnvironment: EnvDevelopment,
				}
			}),
			fx.Decorate(decorateConfigProvider),
			fx.Invoke(func(cfg config.Provider) {
			}),
		).RequireStart().RequireStop()
	})

	t.Run("error creating directory", func(t *testing.T) {
		fsMock := fsmock.NewMockBridgeFS(ctrl)
		fsMock.EXPECT().MkdirAll("/tmp/foo").Return(errors.New("error creating directory"))
		p, _ := config.NewStaticProvider(map[string]interface{}{
			"logging": map[string]interface{}{
				"outputPaths": []string{"/tmp/foo/myfile1.log"},
			},
		})

		_, err := decorateConfigProvider(DecorateConfigParams{Cfg: p, FS: fsMock})
		assert.Error(t, err)
	})
}

func TestEnsureLogFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Run("no errors", func(t *testing.T) {
		fsMock := fsmock.NewMockBridgeFS(ctrl)

		fsMock.EXPECT().MkdirAll("/tmp/foo").Return(nil)
		fsMock.EXPECT().MkdirAll("/tmp/bar").Return(nil)

		fxtest.New(
			t,
			fx.Provide(func() fs.BridgeFS {
				return fsMock
			}),
			fx.Provide(func() config.Provider {
				p, _ := config.NewStaticProvider(map[string]interface{}{
					"logging": map[string]interface{}{
						"outputPaths": []string{
							"/tmp/foo/myfile1.log",
							"stdout",
							"/tmp/bar/myfile2.log",
						},
					},
				})
				return p
			}),
			fx.Decorate(ensureLogFolder),
			fx.Invoke(func(cfg config.Provider) {
			}),
		).RequireStart().RequireStop()
	})

	t.Run("error creating directory", func(t *testing.T) {
		fsMock := fsmock.NewMockBridgeFS(ctrl)
		fsMock.EXPECT().MkdirAll("/tmp/foo").Return(errors.New("error creating directory"))
		p, _ := config.NewStaticProvider(map[string]interface{}{
			"logging": map[string]interface{}{
				"outputPaths": []string{
					"/tmp/foo/myfile1.log",
					"/tmp/bar/myfile2.log",
				},
			},
		})
		_, err := ensureLogFolder(p, fsMock)
		assert.Error(t, err)
	})

	t.Run("invalid logging config", func(t *testing.T) {
		p, _ := config.NewStaticProvider(map[string]interface{}{
			"logging": "sample",
		})
		_, err := ensureLogFolder(p, fsmock.NewMockBridgeFS(ctrl))
		assert.Error(t, err)
	})
}

func TestEnvUnset(t *testing.T) {
	os.Unsetenv(_envBridgeEnvironment)
	assert.Equal(t, EnvLocal, decorateEnvContext(Context{}).Environment)
}
