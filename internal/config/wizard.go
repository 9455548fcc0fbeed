package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Let's set up your site.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Title = title

	descPrompt := promptui.Prompt{
		Label:   "Meta description",
		Default: cfg.Description,
	}
	desc, err := descPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}
	cfg.Description = desc

	portPrompt := promptui.Prompt{
		Label:   "Port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	commentsPrompt := promptui.Select{
		Label: "Enable Commento comments",
		Items: []string{"no", "yes"},
	}
	commentsIdx, _, err := commentsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("comments selection: %w", err)
	}

	if commentsIdx == 1 {
		originPrompt := promptui.Prompt{
			Label: "Commento origin (e.g. https://commento.example.com)",
		}
		origin, err := originPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("commento origin: %w", err)
		}
		cfg.Commento.Origin = origin

		domainPrompt := promptui.Prompt{
			Label: "Commento domain (as registered with Commento)",
		}
		domain, err := domainPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("commento domain: %w", err)
		}
		cfg.Commento.Domain = domain
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	fmt.Printf("\nConfiguration saved to %s\n", path)

	return cfg, nil
}
