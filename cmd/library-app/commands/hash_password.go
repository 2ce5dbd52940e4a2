package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"library-app-go/internal/auth"
)

var hashCost int

// hashPasswordCmd prints a bcrypt hash usable in the users table
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for a password read from the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readPassword(cmd, "Password: ")
		if err != nil {
			return err
		}
		return printHash(cmd.Context(), cmd.OutOrStdout(), raw, hashCost)
	},
}

func init() {
	hashPasswordCmd.Flags().IntVar(&hashCost, "cost", 10, "bcrypt cost")
	rootCmd.AddCommand(hashPasswordCmd)
}

func readPassword(cmd *cobra.Command, prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("hash-password needs an interactive terminal")
	}

	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return raw, nil
}

// printHash hashes raw as typed. Only a trailing line ending is dropped.
func printHash(ctx context.Context, w io.Writer, raw []byte, cost int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	password := strings.TrimSuffix(strings.TrimSuffix(string(raw), "\n"), "\r")

	hash, err := auth.NewBcrypt(cost).Hash(ctx, password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, hash)
	return err
}
