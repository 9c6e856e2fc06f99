package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/opsdeck/opsdeck/internal/domain"
	"github.com/opsdeck/opsdeck/internal/infra/corebridge"
	"github.com/opsdeck/opsdeck/internal/infra/logger"
	"github.com/opsdeck/opsdeck/internal/infra/profile"
	"github.com/opsdeck/opsdeck/internal/ports"
)

type globalOpts struct {
	profileName string
	baseURL     string
	token       string
	lenient     bool
	debug       bool

	// profileDir overrides the profile location in tests.
	profileDir string
}

// client resolves the core endpoint from flags, falling back to the profile
// file when --base-url is absent. Flags win over profile fields.
func (g *globalOpts) client() (ports.CoreClient, error) {
	baseURL := strings.TrimSpace(g.baseURL)
	token := g.token
	lenient := g.lenient

	if baseURL == "" {
		dir := g.profileDir
		if dir == "" {
			dir = profile.DefaultDir()
		}

		p, err := profile.NewLoader(dir).Load(g.profileName)
		if err != nil {
			return nil, fmt.Errorf("no core endpoint configured: set --base-url or add a profile under %s: %w", dir, err)
		}

		baseURL = p.BaseURL
		if strings.TrimSpace(token) == "" {
			token = p.Token
		}
		lenient = lenient || p.LenientJSON
	}

	opts := []corebridge.Option{corebridge.WithLogger(logger.L())}
	if lenient {
		opts = append(opts, corebridge.WithLenientJSON())
	}

	return corebridge.NewSession(corebridge.New(opts...), baseURL, token), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printDashboard(w io.Writer, d domain.Dashboard) {
	health := "DOWN"
	if d.Health.OK {
		health = "OK"
	}
	service := d.Health.Service
	if service == "" {
		service = "core"
	}

	fmt.Fprintf(w, "Service:  %s [%s]\n", service, health)
	fmt.Fprintf(w, "Models:   %d\n", d.ModelsCount)
	fmt.Fprintf(w, "Plans:    %d (%d pending)\n", len(d.Plans), len(d.PendingPlans()))
	fmt.Fprintf(w, "Jobs:     %d\n", len(d.Jobs))
	fmt.Fprintln(w)

	if len(d.Plans) > 0 {
		fmt.Fprintln(w, "Plans:")
		for _, p := range d.Plans {
			line := fmt.Sprintf("  - [%s] %s", p.Status, p.ID)
			if p.Objective != "" {
				line += " — " + p.Objective
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	if len(d.Jobs) > 0 {
		fmt.Fprintln(w, "Jobs:")
		for _, j := range d.Jobs {
			fmt.Fprintf(w, "  - [%s] %s\n", j.Status, j.ID)
		}
		fmt.Fprintln(w)
	}

	if len(d.Events) > 0 {
		fmt.Fprintln(w, "Recent events:")
		for _, e := range d.Events {
			fmt.Fprintf(w, "  - #%d %s/%s\n", e.ID, e.Category, e.Action)
		}
	}
}

func validFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
