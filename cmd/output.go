package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// writeRawJSON pretty-prints an API payload. Some endpoints answer with a
// bare number or boolean; those print as-is.
func writeRawJSON(cmd *cobra.Command, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, printErr := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(string(raw)))
		return printErr
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), buf.String())
	return err
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
