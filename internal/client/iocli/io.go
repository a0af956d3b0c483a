package iocli

//go:generate moq -out io_mock.go . IO

// IO terminal input/output used by the commands
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput prints prompt and reads one trimmed line.
	ReadInput(prompt string) (string, error)
	// ReadPassword prints prompt and reads a line without echo when
	// the input is a terminal.
	ReadPassword(prompt string) (string, error)
	// ReadLine reads one raw line without a prompt; io.EOF at end of input.
	ReadLine() (string, error)
	Write(p []byte) (n int, err error)
}
