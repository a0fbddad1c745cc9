// Package config parses runtime configuration for the editkit demo from
// CLI flags and environment variables; flags win.
package config

import (
	"flag"
	"strings"

	"editkit/internal/logging"
	"editkit/internal/personalization"
)

// Config captures the runtime configuration of the shell binary.
type Config struct {
	Project  string // project name used for per-project personalization
	StateDir string // personalization directory override
	LogFile  string // log destination, empty discards
	Shell    string // console panel command, empty uses $SHELL
	Args     []string
}

const (
	envProject = "EDITKIT_PROJECT"
	envShell   = "EDITKIT_SHELL"
)

// LoadArgs parses flags from args with defaults taken from environ.
// Tests supply both; the binary passes os.Args[1:] and os.Environ().
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("editkit", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	project := fs.String("project", envOrDefault(env, envProject, "default"), "project name for per-project state")
	stateDir := fs.String("state-dir", envOrDefault(env, personalization.EnvStateDir, ""), "directory for persisted editor state")
	logFile := fs.String("log-file", envOrDefault(env, logging.EnvLogFile, ""), "path to the log file")
	shell := fs.String("shell", envOrDefault(env, envShell, ""), "command for the console panel (defaults to $SHELL)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Config{
		Project:  *project,
		StateDir: *stateDir,
		LogFile:  *logFile,
		Shell:    *shell,
		Args:     append([]string(nil), fs.Args()...),
	}, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			continue
		}
		values[k] = v
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && v != "" {
		return v
	}
	return fallback
}
