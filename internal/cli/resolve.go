package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveMaterialID maps user input to a full material ID. Exact matches
// win; otherwise a unique UUID prefix or a unique case-insensitive title
// match is accepted.
func resolveMaterialID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("material ID is required")
	}

	materials, err := app.Materials.List(ctx)
	if err != nil {
		return "", err
	}

	for _, m := range materials {
		if m.ID == input {
			return m.ID, nil
		}
	}

	var matches []string
	for _, m := range materials {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m.ID)
		}
	}
	if len(matches) == 0 {
		for _, m := range materials {
			if strings.EqualFold(m.Title, input) {
				matches = append(matches, m.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("material not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("material %q is ambiguous (%d matches)", input, len(matches))
	}
}
