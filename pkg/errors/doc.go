// Package errors provides the structured error type shared by kubeprov components.
//
// Every failure that crosses a package boundary carries an ErrorCode so the CLI
// can log it consistently and the tests can assert on the failure class without
// matching message text.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeCommandFailed,
//	    "kubectl apply failed",
//	    cause,
//	    map[string]any{
//	        "command": "kubectl apply -f myapp-deployment.yaml",
//	        "stderr":  stderr,
//	    },
//	)
//
// Use Is to test the code of any error in a wrapped chain:
//
//	if errors.Is(err, errors.ErrCodeToolNotFound) { ... }
package errors
