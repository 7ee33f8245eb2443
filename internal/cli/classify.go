package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/pantrymap/internal/classify"
	"github.com/ppiankov/pantrymap/internal/model"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify [name...]",
	Short: "Classify product names without building an artifact",
	Long: `Classify runs the rule tables on ad-hoc names, one per argument or one per
line of standard input. Useful when curating rules.

Example:
  pantrymap classify "extra virgin olive oil" "sun-dried tomato in olive oil"
  pantrymap classify --primary en:sauces "blorptang original"
  cut -f2 names.txt | pantrymap classify --json`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	f := classifyCmd.Flags()
	f.String("primary", "", "upstream main category text applied to every name")
	f.String("tags", "", "upstream category tags applied to every name")
	f.Bool("json", false, "print one JSON object per name")
}

type classifyLine struct {
	Input    string `json:"input"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Category string `json:"category,omitempty"`
	Source   string `json:"source,omitempty"`
	Rule     *int   `json:"rule,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	primary, _ := cmd.Flags().GetString("primary")
	tags, _ := cmd.Flags().GetString("tags")
	asJSON, _ := cmd.Flags().GetBool("json")

	names := args
	if len(names) == 0 {
		var err error
		if names, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	c := classify.New()
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for _, input := range names {
		res := c.Classify(model.Record{Name: input, Primary: primary, Tags: tags})
		line := classifyLine{Input: input, Name: res.Name, Kind: res.Kind.String(), Reason: res.Reason}
		if res.Kind == classify.Classified {
			rule := res.Rule
			line.Category = res.Category.String()
			line.Source = res.Source.String()
			line.Rule = &rule
		}

		if asJSON {
			if err := enc.Encode(line); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			continue
		}
		detail := line.Reason
		if line.Category != "" {
			detail = fmt.Sprintf("%s (rule %d)", line.Source, *line.Rule)
		}
		_, _ = fmt.Fprintf(out, "%-40s %-13s %-10s %s\n", line.Name, line.Kind, line.Category, detail)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return lines, nil
}
