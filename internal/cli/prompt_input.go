package cli

import (
	"bufio"
	"io"
)

// lineReader splits input on LF or CR so Enter works in both cooked and
// raw terminal modes. A CRLF pair counts as one line break.
type lineReader struct {
	r      *bufio.Reader
	lastCR bool
}

func newLineReader(in io.Reader) *lineReader {
	if in == nil {
		return &lineReader{}
	}
	return &lineReader{r: bufio.NewReader(in)}
}

// ReadLine returns the next line without its terminator. A final
// unterminated line is returned before io.EOF.
func (l *lineReader) ReadLine() (string, error) {
	if l.r == nil {
		return "", io.EOF
	}

	var buf []byte
	for {
		b, err := l.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}

		wasCR := l.lastCR
		l.lastCR = b == '\r'

		switch b {
		case '\n':
			if wasCR && len(buf) == 0 {
				continue
			}
			return string(buf), nil
		case '\r':
			return string(buf), nil
		default:
			buf = append(buf, b)
		}
	}
}
