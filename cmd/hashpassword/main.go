// Command hashpassword prompts for the administrator password and prints the
// bcrypt hash to use as ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"campuscalendar/internal/adapters/auth"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hashpassword [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Prints a bcrypt hash for ADMIN_PASSWORD_HASH.\n")
		fmt.Fprintf(os.Stderr, "Reads the password from stdin when stdin is not a terminal.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	hash, err := run(os.Stdin, os.Stderr, *cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func run(in *os.File, prompt io.Writer, cost int) (string, error) {
	var password, confirm string
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		var err error
		if password, err = readMasked(fd, prompt, "Enter password:   "); err != nil {
			return "", err
		}
		if confirm, err = readMasked(fd, prompt, "Confirm password: "); err != nil {
			return "", err
		}
	} else {
		var err error
		if password, err = readLine(in); err != nil {
			return "", err
		}
		confirm = password
	}
	return hashConfirmed(password, confirm, cost)
}

func hashConfirmed(password, confirm string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	if password != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return auth.HashPassword(password, cost)
}

// readMasked reads a password without echo.
func readMasked(fd int, prompt io.Writer, label string) (string, error) {
	fmt.Fprint(prompt, label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
