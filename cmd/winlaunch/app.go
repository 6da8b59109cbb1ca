// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/winlaunch/winlaunch/internal/config"
	"github.com/winlaunch/winlaunch/pkg/diag"
	"github.com/winlaunch/winlaunch/pkg/envvar"
	"github.com/winlaunch/winlaunch/pkg/randstr"
	"github.com/winlaunch/winlaunch/pkg/winpath"
)

type (
	// App is the composition root of the CLI. Command handlers reach the
	// host only through its services.
	App struct {
		Config   config.Provider
		Paths    PathService
		Env      EnvService
		Tokens   TokenSource
		Reporter *diag.Reporter
		stdout   io.Writer
		stderr   io.Writer

		opts rootOptions
		cfg  *config.Config
		log  *slog.Logger
		// installLogger makes the CLI logger the process-wide slog default.
		installLogger bool
	}

	// Dependencies are the injection points for NewApp. Nil fields get
	// production defaults.
	Dependencies struct {
		Config config.Provider
		Paths  PathService
		Env    EnvService
		Tokens TokenSource
		Stdout io.Writer
		Stderr io.Writer
	}

	// PathService is the file-system side of the launcher helpers. Every
	// method taking a path returns *winpath.PathConversionError when the
	// path cannot be converted.
	PathService interface {
		Absolute(path string) (winpath.AbsolutePath, error)
		FileExists(path string) (bool, error)
		DirectoryExists(path string) (bool, error)
		DeleteFile(path string) error
		ShortPath(path string) (string, error)
		ExecutablePath(path string) (string, error)
	}

	// EnvService reads process environment variables.
	EnvService interface {
		Get(name string) (string, bool)
	}

	// TokenSource generates random alphanumeric tokens.
	TokenSource interface {
		Token(n int) (string, error)
	}

	// rootOptions holds the persistent flags.
	rootOptions struct {
		verbose    bool
		configFile string
	}

	hostPaths struct{}
	hostEnv   struct{}
)

// NewApp builds an App, filling unset dependencies with host defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		Paths:  deps.Paths,
		Env:    deps.Env,
		Tokens: deps.Tokens,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Paths == nil {
		app.Paths = hostPaths{}
	}
	if app.Env == nil {
		app.Env = hostEnv{}
	}
	if app.Tokens == nil {
		app.Tokens = randstr.Generator{}
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	app.Reporter = &diag.Reporter{Out: app.stderr}
	app.log = slog.New(slog.DiscardHandler)
	return app
}

// settings returns the loaded configuration, or the defaults before
// PersistentPreRunE has run.
func (a *App) settings() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}

func (hostPaths) Absolute(path string) (winpath.AbsolutePath, error) {
	return winpath.ToAbsoluteExtendedPath(path)
}

func (hostPaths) FileExists(path string) (bool, error)      { return winpath.StatFile(path) }
func (hostPaths) DirectoryExists(path string) (bool, error) { return winpath.StatDirectory(path) }
func (hostPaths) DeleteFile(path string) error              { return winpath.RemoveFile(path) }

func (hostPaths) ShortPath(path string) (string, error) { return winpath.AsShortPath(path) }

func (hostPaths) ExecutablePath(path string) (string, error) {
	return winpath.AsExecutablePathForCreateProcess(path)
}

func (hostEnv) Get(name string) (string, bool) { return envvar.Get(name) }
