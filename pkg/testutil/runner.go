package testutil

import (
	"context"
	"fmt"
	"strings"

	"nixup/pkg/types"
)

// Invocation records one external command execution.
type Invocation struct {
	Name   string
	Args   []string
	Silent bool
}

// String renders the invocation the way it would appear on a shell line.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Name
	}
	return i.Name + " " + strings.Join(i.Args, " ")
}

// FakeRunner implements types.Runner, recording every invocation and
// answering probes and executions from configured maps.
type FakeRunner struct {
	// Present maps tool names to fake paths for LookPath.
	Present map[string]string

	// Failures maps rendered invocation strings (see Invocation.String)
	// to the error Run/RunSilent should return.
	Failures map[string]error

	// Invocations accumulates every Run/RunSilent call in order.
	Invocations []Invocation
}

// NewFakeRunner creates a FakeRunner with the given tools present.
func NewFakeRunner(present ...string) *FakeRunner {
	m := make(map[string]string, len(present))
	for _, name := range present {
		m[name] = "/usr/bin/" + name
	}
	return &FakeRunner{Present: m, Failures: make(map[string]error)}
}

// Fail makes the given rendered invocation return err.
func (r *FakeRunner) Fail(invocation string, err error) {
	r.Failures[invocation] = err
}

func (r *FakeRunner) LookPath(name string) (string, error) {
	if path, ok := r.Present[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (r *FakeRunner) Run(ctx context.Context, name string, args ...string) error {
	return r.record(name, args, false)
}

func (r *FakeRunner) RunSilent(ctx context.Context, name string, args ...string) error {
	return r.record(name, args, true)
}

func (r *FakeRunner) record(name string, args []string, silent bool) error {
	inv := Invocation{Name: name, Args: args, Silent: silent}
	r.Invocations = append(r.Invocations, inv)
	if err, ok := r.Failures[inv.String()]; ok {
		return err
	}
	return nil
}

// Ran reports whether an invocation with the given rendered form occurred.
func (r *FakeRunner) Ran(invocation string) bool {
	for _, inv := range r.Invocations {
		if inv.String() == invocation {
			return true
		}
	}
	return false
}

var _ types.Runner = (*FakeRunner)(nil)
