// Package output provides structured output handling for the rpexport CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for interactive users and for scripts consuming
// structured output.
//
// # Printer
//
// The Printer is the primary interface for command output. It switches format
// based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Export complete", "written": 4})
//	printer.Error(err)
//	printer.Warn("no mapping for muscle group %q", id)
//
// # Exit Codes
//
// The package defines exit codes and a typed error that carries them:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, invalid template)
//	output.ExitSystemError // 2: System error (fetch failure, I/O error)
//	output.ExitDataError   // 3: Data error (unresolved exercise reference)
//
// Use the constructors to create properly-coded errors:
//
//	output.NewUserError("template placeholder {foo} is not supported")
//	output.NewSystemErrorWithCause("fetching mesocycle index", err)
//	output.NewDataError("exercise 42 not found in catalog")
//
// GetExitCode maps an error back to its process exit code at main.
package output
