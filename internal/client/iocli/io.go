// Package iocli abstracts terminal input and output so CLI commands can be
// tested without a real terminal.
package iocli

// IO is the terminal surface used by CLI commands.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
