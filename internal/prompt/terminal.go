package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// Terminal prompts for credentials on the controlling terminal. The password
// is read with echo disabled.
type Terminal struct{}

func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Prompt(req Request) (*Response, error) {
	reader := bufio.NewReader(os.Stdin)

	if req.MainInstruction != "" {
		fmt.Println(req.MainInstruction)
	}
	if req.SupplementaryText != "" {
		fmt.Println(req.SupplementaryText)
	}

	username, err := readLine(reader, "Username", req.Username)
	if err != nil {
		return nil, err
	}

	if req.Password != "" {
		fmt.Print("Password (enter to keep saved): ")
	} else {
		fmt.Print("Password: ")
	}
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, &PromptError{Err: fmt.Errorf("failed to read password: %w", err)}
	}
	password := string(passwordBytes)
	if password == "" {
		if req.Password == "" {
			return nil, ErrCancelled
		}
		password = req.Password
	}

	saveChecked := req.SaveChecked
	if req.ShowSave {
		def := "y/N"
		if req.SaveChecked {
			def = "Y/n"
		}
		answer, err := readLine(reader, fmt.Sprintf("Save credential? [%s]", def), "")
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			saveChecked = true
		case "n", "no":
			saveChecked = false
		case "":
			// keep the pre-populated state
		}
	}

	return &Response{
		Username:    username,
		Password:    password,
		SaveChecked: saveChecked,
	}, nil
}

func readLine(reader *bufio.Reader, label, prefill string) (string, error) {
	if prefill != "" {
		fmt.Printf("%s [%s]: ", label, prefill)
	} else {
		fmt.Printf("%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", &PromptError{Err: fmt.Errorf("failed to read input: %w", err)}
	}

	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return prefill, nil
	}
	return line, nil
}
