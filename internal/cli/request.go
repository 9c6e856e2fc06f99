package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/spf13/cobra"
)

func requestCmd(g *globalOpts) *cobra.Command {
	var data string
	var extract string

	c := &cobra.Command{
		Use:   "request <method> <path>",
		Short: "Send a raw request to the core API",
		Long: `Send a raw request to the core API.

The method is case-insensitive and must be one of GET, POST, PUT, PATCH,
DELETE, HEAD, OPTIONS. The path is joined to the configured base URL.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parsePayload(data)
			if err != nil {
				return err
			}

			client, err := g.client()
			if err != nil {
				return err
			}

			result, err := client.Request(cmd.Context(), args[0], args[1], payload)
			if err != nil {
				return err
			}

			if strings.TrimSpace(extract) != "" {
				value, err := jsonpath.Get(extract, result)
				if err != nil {
					return fmt.Errorf("extract %q: %w", extract, err)
				}
				result = value
			}

			return printJSON(os.Stdout, result)
		},
	}

	c.Flags().StringVarP(&data, "data", "d", "", "JSON payload for the request body")
	c.Flags().StringVar(&extract, "extract", "", "JSONPath expression applied to the response")
	return c
}

// parsePayload turns the --data flag into a JSON value. An empty flag means
// no body at all, not an empty object.
func parsePayload(data string) (any, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}
	var payload any
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("invalid --data payload: %w", err)
	}
	return payload, nil
}
