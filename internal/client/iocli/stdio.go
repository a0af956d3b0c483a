package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх потоков ввода/вывода
type Stdio struct {
	out    io.Writer
	reader *bufio.Reader
	fd     int // дескриптор терминала, -1 если ввод не терминал
}

// NewStdio returns IO over os.Stdin and os.Stdout.
func NewStdio() IO {
	s := NewStream(os.Stdin, os.Stdout).(*Stdio)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		s.fd = fd
	}
	return s
}

// NewStream returns IO over arbitrary streams; passwords are echoed.
func NewStream(in io.Reader, out io.Writer) IO {
	return &Stdio{
		out:    out,
		reader: bufio.NewReader(in),
		fd:     -1,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.fd < 0 {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

func (s *Stdio) ReadLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		// Последняя строка без перевода строки
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
