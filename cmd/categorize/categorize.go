// Package categorize handles the description categorization command.
package categorize

import (
	"github.com/spf13/cobra"

	"raj/stmt-extract/cmd/root"
	"raj/stmt-extract/internal/categorizer"
	"raj/stmt-extract/internal/logging"
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long:  `Categorize prints the spending category a transaction description resolves to.`,
	Run:   categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to categorize")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	category := categorizer.Categorize(root.Description)
	root.Log.Info("description categorized",
		logging.Field{Key: logging.FieldCategory, Value: category})
	cmd.Println(category)
}
