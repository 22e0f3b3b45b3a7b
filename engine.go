package main

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Verdict is the aggregate outcome the engine reports for a run. No per-test
// detail surfaces at this layer.
type Verdict int

const (
	VerdictPass Verdict = iota
	VerdictFail
)

// TestEngine executes a set of named modules and returns an aggregate verdict.
type TestEngine interface {
	Run(ctx context.Context, modules []string, opts []string) (Verdict, error)
}

// evaluator sends an expression to the helper node and returns the printed
// result term. Satisfied by erlSession.
type evaluator interface {
	eval(ctx context.Context, expr string) (string, error)
}

// buildEngineOptions maps parsed flags to engine options. Absence of a flag is
// absence of a list entry, not a negative option.
func buildEngineOptions(flags Flags, reportDir string) []string {
	var opts []string
	if flags.Verbose {
		opts = append(opts, "verbose")
	}
	if flags.Surefire {
		opts = append(opts, fmt.Sprintf("{report,{eunit_surefire,[{dir,%q}]}}", reportDir))
	}
	return opts
}

// erlSession is a short-lived helper node reached through erl_call. The engine
// and the coverage facility share one session so instrumentation and the test
// run happen in the same VM.
type erlSession struct {
	node string
}

// eval sends an expression sequence to the session node and returns the
// printed result term. The node is started on first use.
func (s *erlSession) eval(ctx context.Context, expr string) (string, error) {
	cmd := exec.CommandContext(ctx, "erl_call", "-sname", s.node, "-s", "-e")
	cmd.Stdin = strings.NewReader(expr)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("erl_call failed: %w: %s", err, bytes.TrimSpace(output))
	}

	return string(bytes.TrimSpace(output)), nil
}

// quit shuts the session node down. Best effort; a node that never started is
// not an error.
func (s *erlSession) quit() {
	_ = exec.Command("erl_call", "-sname", s.node, "-q").Run()
}

// eunitEngine runs eunit:test/2 on the session node.
type eunitEngine struct {
	session     evaluator
	compiledDir string
}

func (e *eunitEngine) Run(ctx context.Context, modules []string, opts []string) (Verdict, error) {
	expr := fmt.Sprintf(
		"code:add_patha(%q), eunit:test([%s], [%s]).",
		e.compiledDir,
		joinAtoms(modules),
		strings.Join(opts, ","),
	)

	output, err := e.session.eval(ctx, expr)
	if err != nil {
		return VerdictFail, err
	}

	return parseEngineReply(output)
}

// parseEngineReply maps the term printed by the session node to a verdict.
// eunit:test/2 returns ok or error; erl_call wraps it as {ok, Result}.
func parseEngineReply(output string) (Verdict, error) {
	switch unwrapReply(output) {
	case "ok":
		return VerdictPass, nil
	case "error":
		return VerdictFail, nil
	}

	return VerdictFail, fmt.Errorf("unexpected engine reply: %s", output)
}

// unwrapReply strips the {ok, ...} wrapper erl_call prints around the
// evaluated result, leaving the result term itself.
func unwrapReply(output string) string {
	result := output
	if strings.HasPrefix(result, "{ok,") && strings.HasSuffix(result, "}") {
		result = strings.TrimSpace(result[len("{ok,") : len(result)-1])
	}
	return result
}

// isErrorReply reports whether a result term is an error. Matching the term
// shape, not a substring: a module legitimately named error_utils replies
// {ok,error_utils} and must not be mistaken for a failure.
func isErrorReply(term string) bool {
	return term == "error" || strings.HasPrefix(term, "{error")
}

// joinAtoms renders module names as a comma-separated list of quoted atoms.
func joinAtoms(modules []string) string {
	quoted := make([]string, len(modules))
	for i, module := range modules {
		quoted[i] = "'" + module + "'"
	}
	return strings.Join(quoted, ",")
}
