package quiz

import (
	"fmt"

	"github.com/abhisek/repertoire/internal/catalogue"
	"github.com/abhisek/repertoire/internal/rnd"
)

// Hint and explanation text is presentation only. Templates are picked
// through the injected source so a seeded session reproduces its text
// too.

var hintTemplates = []string{
	"This position arises in the %s.",
	"Think about the main line of the %s.",
	"Stay inside %s theory here.",
}

func hintFor(e *catalogue.Entry, src rnd.Source) string {
	name := e.Family
	if name == "" {
		name = e.Name
	}
	return fmt.Sprintf(hintTemplates[src.IntN(len(hintTemplates))], name)
}

var explanationTemplates = []string{
	"%s is the book continuation at move %d of the %s.",
	"In the %[3]s, theory gives %[1]s here (move %[2]d).",
}

func explanationFor(e *catalogue.Entry, correct string, moveNumber int, src rnd.Source) string {
	text := fmt.Sprintf(explanationTemplates[src.IntN(len(explanationTemplates))],
		correct, moveNumber, e.Name)
	if e.Popularity > 0 {
		text += fmt.Sprintf(" It appears in %d reference games.", e.Popularity)
	}
	return text
}
