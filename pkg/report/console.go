package report

import (
	"fmt"
	"io"
	"os"
	"sync"

	"digital.vasic.facts/pkg/fact"
)

// Console renders suite output to a writer: a banner per
// suite, one block per failure or error as it occurs, and a
// trailing summary. Successes stay silent until the summary.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	styles Styles
}

// NewConsole creates a console reporter writing to w. A nil
// writer defaults to stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{out: w, styles: DefaultStyles()}
}

// WithStyles replaces the color scheme.
func (c *Console) WithStyles(styles Styles) *Console {
	c.styles = styles
	return c
}

// Header emits the suite banner.
func (c *Console) Header(suite *fact.Suite) {
	c.mu.Lock()
	defer c.mu.Unlock()

	banner := suite.Description
	if banner == "" {
		banner = "facts"
	}
	fmt.Fprintln(c.out, c.styles.Header.Render(banner))
	if suite.Name != "" {
		fmt.Fprintln(
			c.out,
			c.styles.SubHeader.Render(suite.Name),
		)
	}
}

// Result renders a single failure or error block. Success
// results are ignored.
func (c *Console) Result(result fact.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch result.Kind {
	case fact.KindFailure:
		fmt.Fprintf(
			c.out, "%s %s\n",
			c.styles.Fail.Render("failed:"),
			result.Expr,
		)
		fmt.Fprintf(
			c.out, "  value: %s\n",
			c.styles.Value.Render(
				fmt.Sprintf("%v", result.Value),
			),
		)
	case fact.KindError:
		fmt.Fprintf(
			c.out, "%s %s\n",
			c.styles.Errored.Render("errored:"),
			result.Expr,
		)
		fmt.Fprintf(
			c.out, "  error: %s\n",
			c.styles.Value.Render(result.Err),
		)
	default:
		return
	}

	if result.Meta.Context != "" {
		fmt.Fprintf(
			c.out, "  %s\n",
			c.styles.Muted.Render(
				"context: "+result.Meta.Context,
			),
		)
	}
	if result.Meta.File != "" {
		fmt.Fprintf(
			c.out, "  %s\n",
			c.styles.Muted.Render(fmt.Sprintf(
				"at %s:%d",
				result.Meta.File, result.Meta.Line,
			)),
		)
	}
}

// Summary emits the suite summary: a single all-green line
// when nothing failed, or a three-line breakdown otherwise.
func (c *Console) Summary(suite *fact.Suite) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if suite.AllPassed() {
		fmt.Fprintln(c.out, c.styles.Pass.Render(
			fmt.Sprintf(
				"%s verified.",
				Pluralize(suite.Total(), "fact"),
			),
		))
		fmt.Fprintln(c.out)
		return
	}

	fmt.Fprintf(
		c.out, "%s verified.\n",
		Pluralize(len(suite.Successes), "fact"),
	)
	fmt.Fprintln(c.out, c.styles.Fail.Render(
		fmt.Sprintf(
			"%s failed.",
			Pluralize(len(suite.Failures), "fact"),
		),
	))
	fmt.Fprintln(c.out, c.styles.Errored.Render(
		fmt.Sprintf(
			"%s errored.",
			Pluralize(len(suite.Errors), "fact"),
		),
	))
	fmt.Fprintln(c.out)
}

// Pluralize renders a count with the singular or plural form
// of a regular noun ("1 fact", "3 facts").
func Pluralize(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
