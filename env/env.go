// Package env is an implementation of the env.Source interface from
// go-simpler.org that reads a .env file, with the process environment taking
// precedence over the file.
package env

import (
	"os"
	"strings"
)

// Env is a key/value map used to represent environment variables.
type Env map[string]string

// GetEnv reads a file expected to represent a collection of KEY=value in
// standard shell environment variable format. Blank lines and lines starting
// with # are skipped, an "export " prefix is allowed, and values may be quoted.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		split := strings.SplitN(line, "=", 2)
		if len(split) != 2 {
			log.W.F("ignoring malformed line in %s: %q", path, line)
			continue
		}
		env[strings.TrimSpace(split[0])] = strings.Trim(strings.TrimSpace(split[1]), `"'`)
	}
	return
}

// LookupEnv returns the value for a key, from the process environment if it is
// set there, otherwise from the file.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	if value, ok = os.LookupEnv(key); ok {
		return
	}
	value, ok = env[key]
	return
}
