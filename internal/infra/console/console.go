package console

import (
	"bufio"
	"io"
	"strings"

	"github.com/cahanap/cj-s-table-cipher/internal/ports"
)

// Terminal is a line-based ports.Console over a reader and a writer.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

var _ ports.Console = (*Terminal)(nil)

// ReadLine strips the trailing "\n" or "\r\n". A final line without a
// terminator is returned before io.EOF.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func (t *Terminal) Write(s string) error {
	_, err := io.WriteString(t.out, s)
	return err
}

func (t *Terminal) WriteLine(s string) error {
	return t.Write(s + "\n")
}
