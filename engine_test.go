package main

import (
	"strings"
	"testing"
)

func TestBuildEngineOptions_NoFlags(t *testing.T) {
	opts := buildEngineOptions(Flags{}, "/tmp/out")
	if len(opts) != 0 {
		t.Errorf("buildEngineOptions() = %v, want empty", opts)
	}
}

func TestBuildEngineOptions_Verbose(t *testing.T) {
	opts := buildEngineOptions(Flags{Verbose: true}, "/tmp/out")
	if len(opts) != 1 || opts[0] != "verbose" {
		t.Errorf("buildEngineOptions(verbose) = %v, want [verbose]", opts)
	}
}

func TestBuildEngineOptions_Surefire(t *testing.T) {
	opts := buildEngineOptions(Flags{Surefire: true}, "/tmp/out")
	if len(opts) != 1 {
		t.Fatalf("buildEngineOptions(surefire) = %v, want exactly one option", opts)
	}
	if !strings.Contains(opts[0], "eunit_surefire") || !strings.Contains(opts[0], "/tmp/out") {
		t.Errorf("surefire option = %q, want report option carrying the report dir", opts[0])
	}
}

func TestBuildEngineOptions_Both(t *testing.T) {
	opts := buildEngineOptions(Flags{Verbose: true, Surefire: true}, "/tmp/out")
	if len(opts) != 2 {
		t.Fatalf("buildEngineOptions(verbose+surefire) = %v, want two options", opts)
	}
	if opts[0] != "verbose" {
		t.Errorf("opts[0] = %q, want verbose", opts[0])
	}
}

func TestParseEngineReply(t *testing.T) {
	tests := []struct {
		reply   string
		verdict Verdict
		wantErr bool
	}{
		{"{ok, ok}", VerdictPass, false},
		{"{ok,ok}", VerdictPass, false},
		{"{ok, error}", VerdictFail, false},
		{"ok", VerdictPass, false},
		{"error", VerdictFail, false},
		{"{badrpc, nodedown}", VerdictFail, true},
		{"", VerdictFail, true},
	}

	for _, tt := range tests {
		verdict, err := parseEngineReply(tt.reply)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseEngineReply(%q) error = %v, wantErr %v", tt.reply, err, tt.wantErr)
			continue
		}
		if err == nil && verdict != tt.verdict {
			t.Errorf("parseEngineReply(%q) = %v, want %v", tt.reply, verdict, tt.verdict)
		}
	}
}

func TestUnwrapReply(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"{ok, ok}", "ok"},
		{"{ok,{ok,error_utils}}", "{ok,error_utils}"},
		{"{ok,{error,enoent}}", "{error,enoent}"},
		{"ok", "ok"},
		{"{badrpc, nodedown}", "{badrpc, nodedown}"},
	}

	for _, tt := range tests {
		if got := unwrapReply(tt.output); got != tt.want {
			t.Errorf("unwrapReply(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestIsErrorReply(t *testing.T) {
	tests := []struct {
		term string
		want bool
	}{
		{"error", true},
		{"{error,enoent}", true},
		{"ok", false},
		{"{ok,error_utils}", false},
		{"{ok,<0.90.0>}", false},
	}

	for _, tt := range tests {
		if got := isErrorReply(tt.term); got != tt.want {
			t.Errorf("isErrorReply(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestJoinAtoms(t *testing.T) {
	got := joinAtoms([]string{"a_test", "b"})
	want := "'a_test','b'"
	if got != want {
		t.Errorf("joinAtoms() = %q, want %q", got, want)
	}

	if got := joinAtoms(nil); got != "" {
		t.Errorf("joinAtoms(nil) = %q, want empty", got)
	}
}
