package cli

import (
	"errors"
	"fmt"
	"strings"

	"easywords/internal/domain"

	"github.com/spf13/cobra"
)

var errNoDictionary = errors.New("no dictionary selected, pass --dict or run `easywords dict select`")

func (a *app) newWordsCmd() *cobra.Command {
	var dictionaryID int
	cmd := &cobra.Command{Use: "words", Short: "Manage the words of a dictionary"}
	cmd.PersistentFlags().IntVarP(&dictionaryID, "dict", "d", 0, "dictionary id (defaults to the selected one)")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.wordsList(cmd, dictionaryID)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "add <word> <translation>",
		Short: "Add a word pair",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.wordsAdd(cmd, dictionaryID, args)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "update <id> <word> <translation>",
		Short: "Replace a word pair",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.wordsUpdate(cmd, dictionaryID, args)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.wordsDelete(cmd, dictionaryID, args)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "random",
		Short: "Show a random word pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.wordsRandom(cmd, dictionaryID)
		},
	})
	return cmd
}

// loadWords restores the session and returns the words of the requested
// dictionary, or of the selected one when dictionaryID is 0
func (a *app) loadWords(cmd *cobra.Command, dictionaryID int) ([]domain.Word, error) {
	sess, err := a.bootstrap(cmd.Context())
	if err != nil {
		return nil, err
	}

	if dictionaryID != 0 && dictionaryID != sess.Snapshot().SelectedDictionaryID {
		sess.FetchWords(cmd.Context(), dictionaryID)
	}

	st := sess.Snapshot()
	if dictionaryID == 0 && st.SelectedDictionaryID == 0 {
		return nil, errNoDictionary
	}
	if st.Error != "" {
		return nil, errors.New(st.Error)
	}
	return st.Words, nil
}

func (a *app) wordsList(cmd *cobra.Command, dictionaryID int) error {
	words, err := a.loadWords(cmd, dictionaryID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(words) == 0 {
		fmt.Fprintln(out, "No words")
		return nil
	}
	for _, w := range words {
		fmt.Fprintf(out, "%d\t%s\t%s\n", w.ID, w.Word, w.Translation)
	}
	return nil
}

func (a *app) wordsRandom(cmd *cobra.Command, dictionaryID int) error {
	words, err := a.loadWords(cmd, dictionaryID)
	if err != nil {
		return err
	}

	w := a.words.RandomPair(words)
	if w == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No words")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", w.Word, w.Translation)
	return nil
}

func (a *app) wordsAdd(cmd *cobra.Command, dictionaryID int, args []string) error {
	dictionaryID, err := a.resolveDictionary(cmd, dictionaryID)
	if err != nil {
		return err
	}

	w, err := a.words.SaveWordPair(cmd.Context(), dictionaryID, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added word %d: %s - %s\n", w.ID, w.Word, w.Translation)
	return nil
}

func (a *app) wordsUpdate(cmd *cobra.Command, dictionaryID int, args []string) error {
	dictionaryID, err := a.resolveDictionary(cmd, dictionaryID)
	if err != nil {
		return err
	}
	wordID, err := parseID(args[0], "word")
	if err != nil {
		return err
	}

	w, err := a.words.Update(cmd.Context(), domain.Word{
		ID:           wordID,
		DictionaryID: dictionaryID,
		Word:         args[1],
		Translation:  strings.Join(args[2:], " "),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated word %d: %s - %s\n", w.ID, w.Word, w.Translation)
	return nil
}

func (a *app) wordsDelete(cmd *cobra.Command, dictionaryID int, args []string) error {
	dictionaryID, err := a.resolveDictionary(cmd, dictionaryID)
	if err != nil {
		return err
	}
	wordID, err := parseID(args[0], "word")
	if err != nil {
		return err
	}

	if err := a.words.Delete(cmd.Context(), dictionaryID, wordID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted word %d\n", wordID)
	return nil
}

func (a *app) resolveDictionary(cmd *cobra.Command, dictionaryID int) (int, error) {
	if dictionaryID < 0 {
		return 0, fmt.Errorf("invalid dictionary id %d", dictionaryID)
	}
	if dictionaryID > 0 {
		return dictionaryID, nil
	}
	if id := a.lastDictionaryID(cmd); id > 0 {
		return id, nil
	}
	return 0, errNoDictionary
}
