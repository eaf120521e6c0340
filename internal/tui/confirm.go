package tui

import (
	"github.com/charmbracelet/huh"
)

// Confirm asks a yes/no question on the terminal. The default answer is no.
func Confirm(title, description string) (bool, error) {
	var confirm bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirm),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirm, nil
}
