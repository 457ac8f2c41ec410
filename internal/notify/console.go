package notify

import (
	"fmt"
	"io"

	"github.com/abhisek/vocabstreak/internal/achievements"
	"github.com/abhisek/vocabstreak/internal/ui/components"
)

// ConsolePresenter prints a boxed toast.
type ConsolePresenter struct {
	W io.Writer
}

func (p ConsolePresenter) Present(d achievements.Display) error {
	_, err := fmt.Fprintln(p.W, components.Toast(d))
	return err
}
