package prompt

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// FormAsker asks through a huh input field with inline validation.
type FormAsker struct{}

// Ask implements Asker.
func (FormAsker) Ask(q Question) (string, error) {
	var answer string

	in := huh.NewInput().
		Title(strings.TrimSpace(q.Prompt)).
		Value(&answer)
	if q.Validate != nil {
		in = in.Validate(func(s string) error {
			return q.Validate(strings.TrimSpace(s))
		})
	}

	if err := huh.NewForm(huh.NewGroup(in)).Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
