package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/pantrymap/internal/rules"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the built-in rule tables",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the rule tables in evaluation order",
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, _ := cmd.Flags().GetBool("fields")
		asYAML, _ := cmd.Flags().GetBool("yaml")
		names, fieldTable := rules.Default()
		out := cmd.OutOrStdout()

		if asYAML {
			var v any = names.Rules()
			if fields {
				v = fieldTable.Rules()
			}
			data, err := yaml.Marshal(v)
			if err != nil {
				return fmt.Errorf("marshal rules: %w", err)
			}
			_, err = out.Write(data)
			return err
		}

		if fields {
			for i, r := range fieldTable.Rules() {
				target := r.Category
				if target == rules.NoOpinion {
					target = "(no opinion)"
				}
				_, _ = fmt.Fprintf(out, "%4d  %-30s %s\n", i, r.Keyword, target)
			}
			return nil
		}
		for i, r := range names.Rules() {
			_, _ = fmt.Fprintf(out, "%4d  %-40s %s\n", i, strings.Join(r.Keywords, " + "), r.Category)
		}
		return nil
	},
}

var rulesLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report rules that can never fire",
	Long: `Lint reports rules shadowed by an earlier identical or broader rule. A
shadowed rule is harmless when it targets the same category; a conflict
means the later rule's category is never produced for those names.

The tables are never rewritten; order stays the source of truth.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		names, fields := rules.Default()
		out := cmd.OutOrStdout()

		conflicts := 0
		printShadows := func(table string, shadows []rules.Shadow) {
			for _, s := range shadows {
				tag := "shadowed"
				if s.Conflict() {
					tag = "CONFLICT"
					conflicts++
				}
				_, _ = fmt.Fprintf(out, "%-8s %s rule %d (%s -> %s) is shadowed by rule %d (-> %s)\n",
					tag, table, s.Rule, s.Keywords, s.Category, s.By, s.Winner)
			}
		}
		nameShadows := rules.LintNames(names)
		fieldShadows := rules.LintFields(fields)
		printShadows("name", nameShadows)
		printShadows("field", fieldShadows)

		_, _ = fmt.Fprintf(out, "\n%d name rules, %d field rules, %d shadowed, %d conflicting\n",
			names.Len(), fields.Len(), len(nameShadows)+len(fieldShadows), conflicts)

		if strict && conflicts > 0 {
			return fmt.Errorf("%d conflicting rules", conflicts)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesLintCmd)

	rulesListCmd.Flags().Bool("fields", false, "list the category-field table instead of the name table")
	rulesListCmd.Flags().Bool("yaml", false, "print as YAML")
	rulesLintCmd.Flags().Bool("strict", false, "exit non-zero when a shadowed rule targets another category")
}
