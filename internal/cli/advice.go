package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrlokans/bookshelf/internal/organize"
)

func (a *app) runAdvice(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("strategy")
	strategy, err := organize.ParseStrategy(name)
	if err != nil {
		return err
	}

	store, err := a.loadStore()
	if err != nil {
		return err
	}

	var target string
	if len(args) > 0 {
		target = args[0]
	}
	lib, err := resolveLibrary(store, target)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(strategy.Title()) + "\n")
	b.WriteString(Styles.Muted.Render(strategy.Description()) + "\n\n")
	b.WriteString(organize.Advice(strategy, lib))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, Styles.Box.Render(b.String()))

	for i, step := range strategy.Steps() {
		fmt.Fprintf(out, "%d. %s\n", i+1, Styles.Bold.Render(step.Title))
		fmt.Fprintf(out, "   %s\n", step.Detail)
		for _, tip := range step.Tips {
			fmt.Fprintf(out, "   %s %s\n", Styles.Muted.Render("•"), tip)
		}
	}
	return nil
}
