// Package cli implements the m2scope command-line interface.
//
// This package provides commands for resolving artifact descriptors,
// expanding transitive dependency graphs, detecting version conflicts,
// querying the version catalog, and serving the analysis API over HTTP.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - resolve: Analyze one artifact's dependencies and conflicts
//   - tree: Render the dependency tree as text, DOT, SVG, or PNG
//   - versions: List published versions of an artifact
//   - dependents: Find artifacts depending on a target
//   - artifacts: List artifacts published in the repository
//   - browse: Interactively browse the repository
//   - serve: Run the HTTP analysis API
//   - cache: Manage the response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dkrasnow/m2scope/pkg/buildinfo"
	"github.com/dkrasnow/m2scope/pkg/repo"
	"github.com/dkrasnow/m2scope/pkg/resolve"
)

// appName is the application name used for directories and display.
const appName = "m2scope"

// descriptorMemoSize is the parsed-descriptor memo capacity for CLI runs.
const descriptorMemoSize = 256

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	repoFlag string
	config   *Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "m2scope analyzes local artifact repositories",
		Long:         `m2scope resolves dependency descriptors from a local artifact repository, expands transitive graphs, surfaces version conflicts, and answers repository-wide queries without touching the network.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.repoFlag, "repo", "", "repository root (default: config, then ~/.m2/repository)")

	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.versionsCommand())
	root.AddCommand(c.dependentsCommand())
	root.AddCommand(c.artifactsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// openRepo resolves the repository root from the --repo flag, the config
// file, or the default location, in that order.
func (c *CLI) openRepo() (*repo.Repository, error) {
	root := c.repoFlag
	if root == "" {
		root = c.loadConfig().Repository
	}
	if root == "" {
		root = repo.DefaultRoot()
	}
	return repo.Open(root)
}

// newResolver creates a memoized resolver over the configured repository.
func (c *CLI) newResolver() (*resolve.Resolver, *repo.Repository, error) {
	r, err := c.openRepo()
	if err != nil {
		return nil, nil, err
	}
	resolver, err := resolve.NewCached(r, descriptorMemoSize)
	if err != nil {
		return nil, nil, err
	}
	return resolver, r, nil
}

// loadConfig reads the config file once and memoizes it. A missing or
// unreadable config degrades to defaults.
func (c *CLI) loadConfig() *Config {
	if c.config == nil {
		cfg, err := LoadConfig(DefaultConfigPath())
		if err != nil {
			c.Logger.Debug("config not loaded", "err", err)
			cfg = &Config{}
		}
		c.config = cfg
	}
	return c.config
}

// cacheDir returns the cache directory using XDG standard (~/.cache/m2scope/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
