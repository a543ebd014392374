// Package git runs the git binary for the sprout CLI.
//
// sprout only needs two git operations when materializing a project, both
// run with output streamed to the user's terminal:
//
//	runner := git.NewRunner(os.Stdout, os.Stderr)
//	runner.Init(ctx, "demo")   // git init demo
//	runner.AddAll(ctx, "demo") // git add . (inside demo)
//
// Failures are returned as *output.ExitError with ExitSystemError, including
// when the git binary cannot be found. Nothing is undone on failure.
package git
