package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/muurk/ocrfront/internal/ocrconfig"
	"github.com/muurk/ocrfront/internal/urls"
)

// languagesCmd lists the language packs offered by the option tabs
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported OCR languages",
	Long: `List the Tesseract language codes offered by ocrfront, in the order
they are joined on the command line.

Other installed codes can still be passed with -l; they are placed after
the listed ones.

Installing language packs: ` + urls.Languages + `
Trained data: ` + urls.Tessdata,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tLANGUAGE\tDEFAULT")
		for _, l := range ocrconfig.SupportedLanguages {
			marker := ""
			if l.Code == ocrconfig.DefaultLanguage {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", l.Code, l.Name, marker)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
