// Package output provides structured output and error handling for the sprout CLI.
//
// # Printer
//
// The Printer handles both human-readable and JSON output:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, colorEnabled)
//	printer.Next("Done. Now run:", "cd demo")
//	printer.Error(err)
//
// Styles are lipgloss-based and are cleared when color is disabled.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error or canceled menu
//	output.ExitSystemError // 2: System error (fetch failed, git failed, I/O error)
//
// Errors created with NewSilentError carry exit code 1 but are not printed;
// the CLI uses them when the user backs out of the root menu.
package output
