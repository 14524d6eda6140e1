package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newLoginCmd() *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login and store the tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, password, err := a.promptCredentials(cmd, username)
			if err != nil {
				return err
			}
			if _, err := a.auth.Login(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in")
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	return cmd
}

func (a *app) newRegisterCmd() *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, password, err := a.promptCredentials(cmd, username)
			if err != nil {
				return err
			}
			if err := a.auth.Register(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registered, now run `easywords login`")
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	return cmd
}

func (a *app) logout(cmd *cobra.Command, _ []string) error {
	if err := a.auth.Logout(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
	return nil
}

func (a *app) promptCredentials(cmd *cobra.Command, username string) (string, string, error) {
	out := cmd.OutOrStdout()

	if username == "" {
		fmt.Fprint(out, "Username: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return "", "", fmt.Errorf("failed to read username: %w", err)
		}
		username = strings.TrimSpace(line)
	}

	fmt.Fprint(out, "Password: ")
	password, err := a.opts.ReadPassword()
	fmt.Fprintln(out)
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}
	return username, string(password), nil
}
