package ports

// Console is the line-based terminal the interactive session talks to.
type Console interface {
	// ReadLine returns the next input line without its terminator.
	// io.EOF signals that no more input will arrive.
	ReadLine() (string, error)
	// Write prints s as-is (prompts).
	Write(s string) error
	WriteLine(s string) error
}
