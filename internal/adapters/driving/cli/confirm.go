package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrNotConfirmed is returned when a destructive command is declined.
var ErrNotConfirmed = errors.New("aborted")

// skipConfirm is the shared --yes flag value.
var skipConfirm bool

// confirm gates a destructive action. Interactive sessions get a y/N
// prompt; non-interactive ones must pass --yes explicitly.
func confirm(cmd *cobra.Command, prompt string) error {
	if skipConfirm {
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("refusing to run without confirmation; pass --yes")
	}

	cmd.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return ErrNotConfirmed
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return nil
	default:
		return ErrNotConfirmed
	}
}
