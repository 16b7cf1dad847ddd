package netrc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrSyntax reports netrc content this parser cannot make sense of.
var ErrSyntax = errors.New("netrc syntax error")

// Parse reads a netrc token stream into a table.
//
// Recognized tokens: machine, default, login, password, account, macdef.
// Tokens may be spread over any number of lines. A '#' starts a comment
// running to the end of the line. A macdef body is skipped up to the next
// blank line. When a host appears more than once, the last entry wins.
func Parse(r io.Reader) (Netrc, error) {
	tokens, err := tokenize(r)
	if err != nil {
		return nil, err
	}

	table := Netrc{}

	var host string
	var machine Machine

	commit := func() {
		if host != "" {
			table[host] = machine
		}
	}

	for i := 0; i < len(tokens); i++ {
		switch token := tokens[i]; token {
		case "machine":
			i++
			if i >= len(tokens) {
				return nil, fmt.Errorf("%w: machine without a name", ErrSyntax)
			}
			commit()
			host = tokens[i]
			machine = Machine{}
		case "default":
			commit()
			host = DefaultMachine
			machine = Machine{}
		case "login", "password", "account":
			i++
			if i >= len(tokens) {
				return nil, fmt.Errorf("%w: %s without a value", ErrSyntax, token)
			}
			if host == "" {
				return nil, fmt.Errorf("%w: %s before any machine", ErrSyntax, token)
			}
			switch token {
			case "login":
				machine.Login = tokens[i]
			case "password":
				machine.Password = tokens[i]
			case "account":
				machine.Account = tokens[i]
			}
		default:
			return nil, fmt.Errorf("%w: unexpected token %q", ErrSyntax, token)
		}
	}

	commit()

	return table, nil
}

// ParseFile reads and parses the netrc file at path.
func ParseFile(path string) (Netrc, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

func tokenize(r io.Reader) ([]string, error) {
	var tokens []string

	scanner := bufio.NewScanner(r)
	inMacro := false

	for scanner.Scan() {
		line := scanner.Text()

		if inMacro {
			if strings.TrimSpace(line) == "" {
				inMacro = false
			}
			continue
		}

		fields := strings.Fields(line)
		for i := 0; i < len(fields); i++ {
			if strings.HasPrefix(fields[i], "#") {
				break
			}
			if fields[i] == "macdef" {
				// The macro name (if any) is the rest of this line;
				// the body runs to the next blank line.
				inMacro = true
				break
			}
			tokens = append(tokens, fields[i])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}
