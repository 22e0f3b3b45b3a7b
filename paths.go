package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// BuildPaths locates the compiled output of the active build profile.
type BuildPaths struct {
	ProjectRoot string
	Profile     string
	App         string
	// Directory holding the compiled .beam artifacts
	CompiledDir string
	// App output root; coverage data, reports and the run summary land here
	AppRoot string
}

// resolveBuildPaths resolves the build layout for the current working
// directory. Profile and app name come from the environment (ETR_PROFILE,
// ETR_APP), with a .env file in the project root honored the same way.
func resolveBuildPaths() (BuildPaths, error) {
	root, err := os.Getwd()
	if err != nil {
		return BuildPaths{}, fmt.Errorf("failed to resolve project root: %w", err)
	}

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(root, ".env"))

	profile := os.Getenv("ETR_PROFILE")
	if profile == "" {
		profile = "test"
	}
	app := os.Getenv("ETR_APP")
	if app == "" {
		app = filepath.Base(root)
	}

	appRoot := filepath.Join(root, "_build", profile, "lib", app)

	return BuildPaths{
		ProjectRoot: root,
		Profile:     profile,
		App:         app,
		CompiledDir: filepath.Join(appRoot, "ebin"),
		AppRoot:     appRoot,
	}, nil
}
