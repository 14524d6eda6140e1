// Package cli implements the easywords command-line client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"easywords/internal/repository"
	"easywords/internal/service"
	"easywords/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Client is the dictionary service client used by the commands
type Client interface {
	session.API
	service.AuthAPI
	service.DictionaryAPI
	service.WordAPI
}

// Options wires the commands to their collaborators
type Options struct {
	Client Client
	Store  repository.StateRepository
	Logger *zap.Logger
	// ReadPassword reads a password without echo; defaults to the terminal
	ReadPassword func() ([]byte, error)
}

type app struct {
	opts         Options
	auth         *service.AuthService
	dictionaries *service.DictionaryService
	words        *service.WordService
}

var errNotLoggedIn = errors.New("not logged in, run `easywords login` first")

// NewRootCmd builds the command tree
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ReadPassword == nil {
		opts.ReadPassword = func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		}
	}

	a := &app{
		opts:         opts,
		auth:         service.NewAuthService(opts.Client, opts.Store, opts.Logger),
		dictionaries: service.NewDictionaryService(opts.Client, opts.Store, opts.Logger),
		words:        service.NewWordService(opts.Client, opts.Store, opts.Logger),
	}

	root := &cobra.Command{
		Use:           "easywords",
		Short:         "EasyWords vocabulary client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(a.newLoginCmd())
	root.AddCommand(a.newRegisterCmd())
	root.AddCommand(&cobra.Command{Use: "logout", Short: "Forget the stored access token", Args: cobra.NoArgs, RunE: a.logout})
	root.AddCommand(&cobra.Command{Use: "status", Short: "Show session status", Args: cobra.NoArgs, RunE: a.status})
	root.AddCommand(a.newDictCmd())
	root.AddCommand(a.newWordsCmd())
	return root
}

// bootstrap restores the stored session and fails when it is not signed in
func (a *app) bootstrap(ctx context.Context) (*session.Session, error) {
	sess := session.New(a.opts.Client, a.opts.Store, a.opts.Logger)
	sess.Bootstrap(ctx)

	if !sess.Snapshot().Authenticated {
		return nil, errNotLoggedIn
	}
	return sess, nil
}

func (a *app) status(cmd *cobra.Command, _ []string) error {
	sess := session.New(a.opts.Client, a.opts.Store, a.opts.Logger)
	sess.Bootstrap(cmd.Context())

	st := sess.Snapshot()
	out := cmd.OutOrStdout()
	if !st.Authenticated {
		fmt.Fprintln(out, "Not logged in")
		return nil
	}

	fmt.Fprintf(out, "Logged in, %d dictionaries\n", len(st.Dictionaries))
	if d, ok := selectedDictionary(st); ok {
		fmt.Fprintf(out, "Selected: %s (id %d, %d words)\n", d.Name, d.ID, len(st.Words))
	} else {
		fmt.Fprintln(out, "No dictionary selected")
	}
	if st.Error != "" {
		fmt.Fprintf(out, "Error: %s\n", st.Error)
	}
	return nil
}

func parseID(raw, what string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, raw)
	}
	return id, nil
}
