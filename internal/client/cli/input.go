package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Input seams, replaced in tests.
var (
	getSimpleText = func(reader *bufio.Reader, prompt string, out io.Writer) (string, error) {
		fmt.Fprintf(out, "%s: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}

	getPassword = func(out io.Writer) (string, error) {
		fmt.Fprint(out, "Contraseña: ")
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return "", err
			}
			return strings.TrimSpace(line), nil
		}
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
)
