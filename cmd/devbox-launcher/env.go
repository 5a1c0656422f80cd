package main

import (
	"os"
	"sort"
	"strings"
)

// launchEnv is the single environment snapshot threaded through the
// whole bootstrap. Installers and the companion setup mutate it, and
// the same snapshot is handed to every subprocess and to the final
// exec handoff.
type launchEnv struct {
	vars map[string]string
}

func newLaunchEnv() *launchEnv {
	env := &launchEnv{vars: map[string]string{}}
	for _, kv := range os.Environ() {
		if i := strings.Index(kv, "="); i >= 0 {
			env.vars[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

func (e *launchEnv) Get(key string) string {
	return e.vars[key]
}

func (e *launchEnv) Set(key, val string) {
	e.vars[key] = val
}

func (e *launchEnv) Unset(key string) {
	delete(e.vars, key)
}

// PrependPath puts dir at the front of PATH unless it is already a
// PATH element, so binaries installed during bootstrap win over any
// system-wide copies.
func (e *launchEnv) PrependPath(dir string) {
	sep := string(os.PathListSeparator)
	current := e.vars["PATH"]
	for _, elem := range strings.Split(current, sep) {
		if elem == dir {
			return
		}
	}
	if current == "" {
		e.vars["PATH"] = dir
		return
	}
	e.vars["PATH"] = dir + sep + current
}

func (e *launchEnv) AppendPath(dir string) {
	sep := string(os.PathListSeparator)
	current := e.vars["PATH"]
	if current == "" {
		e.vars["PATH"] = dir
		return
	}
	e.vars["PATH"] = current + sep + dir
}

// Environ renders the snapshot in the KEY=value form expected by
// os/exec and the exec handoff. Sorted for deterministic output.
func (e *launchEnv) Environ() []string {
	out := make([]string, 0, len(e.vars))
	for k, v := range e.vars {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
