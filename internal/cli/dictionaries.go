package cli

import (
	"fmt"
	"strings"

	"easywords/internal/domain"
	"easywords/internal/session"

	"github.com/spf13/cobra"
)

func (a *app) newDictCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "dict", Short: "Manage dictionaries"}
	cmd.AddCommand(&cobra.Command{Use: "list", Short: "List dictionaries", Args: cobra.NoArgs, RunE: a.dictList})
	cmd.AddCommand(&cobra.Command{Use: "create <name>", Short: "Create a dictionary", Args: cobra.MinimumNArgs(1), RunE: a.dictCreate})
	cmd.AddCommand(&cobra.Command{Use: "rename <id> <name>", Short: "Rename a dictionary", Args: cobra.MinimumNArgs(2), RunE: a.dictRename})
	cmd.AddCommand(&cobra.Command{Use: "delete <id>", Short: "Delete a dictionary", Args: cobra.ExactArgs(1), RunE: a.dictDelete})
	cmd.AddCommand(&cobra.Command{Use: "select <id>", Short: "Select the working dictionary", Args: cobra.ExactArgs(1), RunE: a.dictSelect})
	return cmd
}

func (a *app) dictList(cmd *cobra.Command, _ []string) error {
	dictionaries, err := a.dictionaries.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(dictionaries) == 0 {
		fmt.Fprintln(out, "No dictionaries")
		return nil
	}

	selected := a.lastDictionaryID(cmd)
	for _, d := range dictionaries {
		mark := " "
		if d.ID == selected {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %d\t%s\n", mark, d.ID, d.Name)
	}
	return nil
}

func (a *app) dictCreate(cmd *cobra.Command, args []string) error {
	d, err := a.dictionaries.Create(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created dictionary %d %q\n", d.ID, d.Name)
	return nil
}

func (a *app) dictRename(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "dictionary")
	if err != nil {
		return err
	}
	d, err := a.dictionaries.Rename(cmd.Context(), id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Renamed dictionary %d to %q\n", d.ID, d.Name)
	return nil
}

func (a *app) dictDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "dictionary")
	if err != nil {
		return err
	}
	if err := a.dictionaries.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted dictionary %d\n", id)
	return nil
}

func (a *app) dictSelect(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "dictionary")
	if err != nil {
		return err
	}

	sess, err := a.bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	d, ok := domain.FindDictionary(sess.Snapshot().Dictionaries, id)
	if !ok {
		return fmt.Errorf("dictionary %d not found", id)
	}

	sess.HandleSelectChange(cmd.Context(), id)

	st := sess.Snapshot()
	if st.Error != "" {
		return fmt.Errorf("selected %q but failed to load words: %s", d.Name, st.Error)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Selected %q (%d words)\n", d.Name, len(st.Words))
	return nil
}

func (a *app) lastDictionaryID(cmd *cobra.Command) int {
	raw, ok, err := a.opts.Store.Get(cmd.Context(), domain.KeyLastDictionaryID)
	if err != nil || !ok {
		return 0
	}
	return domain.ParseDictionaryID(raw)
}

func selectedDictionary(st session.State) (domain.Dictionary, bool) {
	if st.SelectedDictionaryID == 0 {
		return domain.Dictionary{}, false
	}
	return domain.FindDictionary(st.Dictionaries, st.SelectedDictionaryID)
}
