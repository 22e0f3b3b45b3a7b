package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "etr",
		Short: "EUnit test runner for compiled BEAM modules",
		Long: `A build-tool task that discovers compiled test modules, runs them through
the external eunit engine and reports pass/fail as the process exit status.
Supports optional cover instrumentation and surefire XML reports.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

type Flags struct {
	Verbose  bool
	Surefire bool
	Cover    bool
	Modules  []string
}

var GlobalFlags Flags

func init() {
	// Root cmd
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(faillsCmd)

	// Run cmd
	runCmd.Flags().BoolVarP(&GlobalFlags.Verbose, "verbose", "v", false, "Enable verbose engine output")
	runCmd.Flags().BoolVar(&GlobalFlags.Surefire, "surefire", false, "Emit surefire XML reports to the app output root")
	runCmd.Flags().BoolVarP(&GlobalFlags.Cover, "cover", "c", false, "Instrument compiled modules and export coverage data")
	runCmd.Flags().StringArrayVarP(&GlobalFlags.Modules, "module", "m", nil, "Restrict the run to the named module (repeatable)")

	// List cmd
	listCmd.Flags().StringArrayVarP(&GlobalFlags.Modules, "module", "m", nil, "Restrict the listing to the named module (repeatable)")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run discovered test modules through eunit",
	Long:  "Discover compiled test modules and execute them with the external eunit engine",
	RunE:  runTests,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered test modules",
	Long:  "Scan the compiled output directory and list runnable test modules without executing them",
	RunE:  listModules,
}

// runTests executes the test run command
func runTests(cmd *cobra.Command, args []string) error {
	paths, err := resolveBuildPaths()
	if err != nil {
		return err
	}

	session := &erlSession{node: RUNNER_NODE}
	defer session.quit()

	engine := &eunitEngine{session: session, compiledDir: paths.CompiledDir}
	cov := &coverFacility{session: session}

	return executeRun(cmd.Context(), GlobalFlags, paths, engine, cov)
}

// listModules lists all discovered test modules
func listModules(cmd *cobra.Command, args []string) error {
	paths, err := resolveBuildPaths()
	if err != nil {
		return err
	}

	discovered, err := discoverModules(paths.CompiledDir)
	if err != nil {
		return err
	}
	modules := selectModules(GlobalFlags.Modules, discovered)

	if len(modules) == 0 {
		color.Yellow("No test modules found")
		return nil
	}

	printModuleList(modules)

	return nil
}
