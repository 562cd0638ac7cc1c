package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"yashubustudio/retailsample/categorizer"
)

type ruleTableDump struct {
	Default string                    `yaml:"default"`
	Rules   []categorizer.KeywordRule `yaml:"rules"`
}

type rulesDump struct {
	Classes    ruleTableDump `yaml:"product_class"`
	Subclasses ruleTableDump `yaml:"product_subclass"`
}

func dumpTable(t *categorizer.KeywordTable) ruleTableDump {
	return ruleTableDump{Default: t.Fallback(), Rules: t.Rules()}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the keyword tables in priority order as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(rulesDump{
				Classes:    dumpTable(categorizer.ProductClassTable()),
				Subclasses: dumpTable(categorizer.ProductSubclassTable()),
			}); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
