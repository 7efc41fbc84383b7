package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bruntbrus/minidom/internal/errors"
	"github.com/bruntbrus/minidom/pkg/dom"
	"github.com/bruntbrus/minidom/pkg/htmldom"
)

func queryCmd() *cobra.Command {
	var (
		text    bool
		attrKey string
		first   bool
		count   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "query <selector> [file]",
		Short: "Run a CSS selector against an HTML document",
		Long: `Parse an HTML document and print the elements matching a
CSS selector group. Reads from a file when given, standard input
otherwise.

Examples:
  minidom query "nav a.active" page.html
  minidom query "[data-id]" --attr data-id < page.html
  minidom query "li" --count page.html`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := args[0]

			var in io.Reader = os.Stdin
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return errors.New(errors.CodeCLIInput).
						WithDetail(err.Error()).
						Wrap(err)
				}
				defer f.Close()
				in = f
			}

			var opts []htmldom.Option
			if verbose {
				log, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer log.Sync()
				opts = append(opts, htmldom.WithLogger(log))
			}

			doc, err := htmldom.Parse(in, opts...)
			if err != nil {
				return errors.New(errors.CodeCLIInput).
					WithDetail(err.Error()).
					Wrap(err)
			}

			d := dom.New(doc)
			matches, err := d.QueryAll(nil, selector)
			if err != nil {
				return err
			}
			if first && len(matches) > 1 {
				matches = matches[:1]
			}

			if count {
				fmt.Println(len(matches))
				return nil
			}

			for _, el := range matches {
				switch {
				case text:
					fmt.Println(el.TextContent())
				case attrKey != "":
					if v, ok := el.GetAttribute(attrKey); ok {
						fmt.Println(v)
					}
				default:
					fmt.Println(outerHTML(el))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&text, "text", "t", false, "Print text content instead of markup")
	cmd.Flags().StringVarP(&attrKey, "attr", "a", "", "Print the given attribute of each match")
	cmd.Flags().BoolVarP(&first, "first", "1", false, "Print only the first match")
	cmd.Flags().BoolVarP(&count, "count", "c", false, "Print only the number of matches")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// outerHTML renders a matched element, falling back to its inner
// markup for substrates without an outer renderer.
func outerHTML(el dom.Element) string {
	if o, ok := el.(interface{ OuterHTML() string }); ok {
		return o.OuterHTML()
	}
	return el.InnerHTML()
}
