package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestResolveBuildPaths_Defaults(t *testing.T) {
	t.Setenv("ETR_PROFILE", "")
	t.Setenv("ETR_APP", "")
	chdir(t, t.TempDir())

	paths, err := resolveBuildPaths()
	if err != nil {
		t.Fatalf("resolveBuildPaths() error = %v", err)
	}

	if paths.Profile != "test" {
		t.Errorf("profile = %q, want test", paths.Profile)
	}
	if paths.App != filepath.Base(paths.ProjectRoot) {
		t.Errorf("app = %q, want base of project root %q", paths.App, paths.ProjectRoot)
	}
	wantSuffix := filepath.Join("_build", "test", "lib", paths.App, "ebin")
	if !strings.HasSuffix(paths.CompiledDir, wantSuffix) {
		t.Errorf("compiled dir = %q, want suffix %q", paths.CompiledDir, wantSuffix)
	}
	if paths.AppRoot != filepath.Dir(paths.CompiledDir) {
		t.Errorf("app root = %q, want parent of compiled dir", paths.AppRoot)
	}
}

func TestResolveBuildPaths_EnvOverrides(t *testing.T) {
	t.Setenv("ETR_PROFILE", "ci")
	t.Setenv("ETR_APP", "myapp")
	chdir(t, t.TempDir())

	paths, err := resolveBuildPaths()
	if err != nil {
		t.Fatalf("resolveBuildPaths() error = %v", err)
	}

	if paths.Profile != "ci" || paths.App != "myapp" {
		t.Errorf("profile/app = %q/%q, want ci/myapp", paths.Profile, paths.App)
	}
	wantSuffix := filepath.Join("_build", "ci", "lib", "myapp", "ebin")
	if !strings.HasSuffix(paths.CompiledDir, wantSuffix) {
		t.Errorf("compiled dir = %q, want suffix %q", paths.CompiledDir, wantSuffix)
	}
}

func TestResolveBuildPaths_EnvFile(t *testing.T) {
	saved, had := os.LookupEnv("ETR_PROFILE")
	os.Unsetenv("ETR_PROFILE")
	defer func() {
		if had {
			os.Setenv("ETR_PROFILE", saved)
		} else {
			os.Unsetenv("ETR_PROFILE")
		}
	}()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ETR_PROFILE=dev\n"), 0644); err != nil {
		t.Fatalf("WriteFile(.env): %v", err)
	}
	chdir(t, dir)

	paths, err := resolveBuildPaths()
	if err != nil {
		t.Fatalf("resolveBuildPaths() error = %v", err)
	}
	if paths.Profile != "dev" {
		t.Errorf("profile = %q, want dev from .env", paths.Profile)
	}
}
