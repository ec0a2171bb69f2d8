package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wenzisay/localdate/internal/domain"
)

func printResult(w io.Writer, res domain.Result, format domain.OutputFormat) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case domain.FormatPretty, "":
		printPrettyResult(w, res)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyResult(w io.Writer, res domain.Result) {
	if res.Unit != "" {
		fmt.Fprintf(w, "%s %s\n", res.Value, res.Unit)
		return
	}
	fmt.Fprintln(w, res.Value)
}
