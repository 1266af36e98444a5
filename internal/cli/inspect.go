package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/layout"
	"github.com/matzehuels/treeshape/pkg/render/text"
)

// inspectCommand creates the inspect command, which prints the example tree
// and its shape in the terminal without writing files.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "inspect [complete|proper|perfect]",
		Short:     "Print the example tree and the shapes it satisfies",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: bintree.ModeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := bintree.Example()
			title := "Example tree"
			if len(args) == 1 {
				mode, err := bintree.ParseMode(args[0])
				if err != nil {
					return usageError(err)
				}
				z := bintree.Normalizer{Label: c.Config.Label}
				res, err := z.Normalize(root, mode)
				if err != nil {
					return err
				}
				title = fmt.Sprintf("Example tree, %s (+%d placeholders)", mode, res.Placeholders)
			}

			fmt.Println(StyleTitle.Render(title))
			fmt.Println()
			fmt.Print(text.Tree(root))
			fmt.Println()
			printKeyValue("nodes", StyleNumber.Render(fmt.Sprint(bintree.Count(root))))
			printKeyValue("depth", StyleNumber.Render(fmt.Sprint(bintree.MaxDepth(root))))
			printShapes(root)
			fmt.Println()
			fmt.Print(text.Summary(layout.Compute(root, c.Config.Layout)))
			if len(args) == 0 {
				printNextStep("Normalize it", appName+" normalize complete")
			}
			return nil
		},
	}
}
