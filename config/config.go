// Package config is the environment driven configuration shared by the key
// tools. Values come from the process environment, falling back to a .env file
// in the application's XDG config directory, and then to the defaults below.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go-simpler.org/env"

	envfile "identity.realy.lol/env"
	"identity.realy.lol/config/keyvalue"
	"identity.realy.lol/lol"
)

// C is the configuration of the key tools.
type C struct {
	AppName  st `env:"APP_NAME" default:"nkeys"`
	Config   st `env:"CONFIG" usage:"directory holding the .env file, defaults to the XDG config directory of APP_NAME"`
	LogLevel st `env:"LOG_LEVEL" default:"info" usage:"log level: off fatal error warn info debug trace"`
	Threads  no `env:"THREADS" default:"0" usage:"vanity miner threads, 0 is one per CPU"`
	Format   st `env:"FORMAT" default:"text" usage:"output format: text or yaml"`
	LogN     no `env:"SCRYPT_LOG_N" default:"16" usage:"scrypt cost exponent for encrypted secret keys"`
	Pprof    bo `env:"PPROF" default:"false" usage:"write a CPU profile to the working directory"`
}

// New loads the configuration for the named application. The name only sets
// the default for APP_NAME and so the config directory.
func New(appName st) (c *C, err er) {
	c = &C{}
	if err = env.Load(c, &env.Options{Source: source{app: appName}}); chk.E(err) {
		return
	}
	if c.Config == "" {
		c.Config = filepath.Join(xdg.ConfigHome, c.AppName)
	}
	path := filepath.Join(c.Config, ".env")
	if _, e := os.Stat(path); e == nil {
		var fe envfile.Env
		if fe, err = envfile.GetEnv(path); chk.E(err) {
			return
		}
		log.D.F("loading configuration from %s", path)
		dir := c.Config
		if err = env.Load(c, &env.Options{Source: source{file: fe, app: appName}}); chk.E(err) {
			return
		}
		c.Config = dir
	}
	if err = c.Validate(); err != nil {
		return
	}
	lol.SetLogLevel(c.LogLevel)
	return
}

// Validate checks the values that cannot be checked by their type.
func (c *C) Validate() (err er) {
	switch {
	case c.Format != "text" && c.Format != "yaml":
		err = errorf.E("FORMAT must be text or yaml, got %q", c.Format)
	case c.Threads < 0:
		err = errorf.E("THREADS must not be negative, got %d", c.Threads)
	case c.LogN < 1 || c.LogN > 22:
		err = errorf.E("SCRYPT_LOG_N must be between 1 and 22, got %d", c.LogN)
	}
	return
}

// PrintHelp writes the environment variables with their defaults and usage,
// and the pseudo commands every tool accepts.
func (c *C) PrintHelp(w io.Writer) {
	_, _ = fmt.Fprintf(w, "\nenvironment variables that configure %s\n\n", c.AppName)
	env.Usage(c, w, nil)
	_, _ = fmt.Fprintf(w, `
config file:

  %s

commands:

  - print this help message

      %s help

  - print environment variables as a shell script that can be edited to set the configuration

      %s env

`, filepath.Join(c.Config, ".env"), os.Args[0], os.Args[0])
}

// PrintEnv writes the configuration as a shell script.
func (c *C) PrintEnv(w io.Writer) { keyvalue.PrintEnv(*c, w) }

// HandlePseudoCommands prints help or the environment if the sole argument asks
// for it, and reports whether it did.
func (c *C) HandlePseudoCommands(args []st, w io.Writer) (handled bo) {
	if len(args) != 2 {
		return
	}
	switch args[1] {
	case "help":
		c.PrintHelp(w)
		handled = true
	case "env":
		c.PrintEnv(w)
		handled = true
	}
	return
}

// source looks a key up in the process environment, then the .env file, and
// makes APP_NAME default to the calling tool's name.
type source struct {
	file envfile.Env
	app  st
}

func (s source) LookupEnv(key st) (value st, ok bo) {
	if value, ok = s.file.LookupEnv(key); ok || key != "APP_NAME" {
		return
	}
	return s.app, true
}
