package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"linkrouter/internal/linkparser"
	"linkrouter/pkg/domain"
)

// classified pairs an input with its destination for YAML output.
type classified struct {
	Input        string             `yaml:"input"`
	Destination  domain.Destination `yaml:"destination"`
	CanonicalURL string             `yaml:"canonicalUrl,omitempty"`
}

var kindColors = map[domain.DestinationKind]*color.Color{ //nolint: gochecknoglobals
	domain.DestinationEntry:        color.New(color.FgGreen),
	domain.DestinationLink:         color.New(color.FgGreen),
	domain.DestinationConversation: color.New(color.FgCyan),
	domain.DestinationProfile:      color.New(color.FgCyan),
	domain.DestinationTag:          color.New(color.FgBlue),
	domain.DestinationEmbed:        color.New(color.FgMagenta),
	domain.DestinationBrowser:      color.New(color.FgYellow),
	domain.DestinationNone:         color.New(color.Faint),
}

func writeYAML(w io.Writer, results []classified) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("could not encode yaml: %w", err)
	}

	return enc.Close() //nolint: wrapcheck
}

func writeTable(w io.Writer, results []classified) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tKIND\tTARGET")
	for _, r := range results {
		kind := string(r.Destination.Kind)
		if c, ok := kindColors[r.Destination.Kind]; ok {
			kind = c.Sprint(kind)
		}

		target := r.CanonicalURL
		if short := linkparser.Shorthand(r.Destination); short != "" {
			target = short + " " + target
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Input, kind, target)
	}

	return tw.Flush() //nolint: wrapcheck
}

// classifyCommand constructs the 'classify' subcommand that classifies its
// arguments offline and prints where each of them leads.
func classifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify URL...",
		Short: "Classifies URLs and @user / #tag references without a server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asYAML, _ := cmd.Flags().GetBool("yaml")

			results := make([]classified, 0, len(args))
			for _, arg := range args {
				d := linkparser.Classify(arg)
				results = append(results, classified{
					Input:        arg,
					Destination:  d,
					CanonicalURL: linkparser.BuildURL(d),
				})
			}

			if asYAML {
				return writeYAML(cmd.OutOrStdout(), results)
			}

			return writeTable(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().Bool("yaml", false, "Print results as YAML")

	return cmd
}
