package console

import (
	"fmt"
	"io"
	"time"
)

// showLoading prints a short dot animation while a search runs. Purely
// cosmetic; suppressed when the sleep function is nil (tests).
func (c *Controller) showLoading(label string) {
	if c.sleep == nil {
		return
	}
	fmt.Fprint(c.out, label)
	for i := 0; i < 3; i++ {
		c.sleep(150 * time.Millisecond)
		fmt.Fprint(c.out, ".")
	}
	fmt.Fprintln(c.out)
}

// celebrate rings the terminal bell and prints a banner for a successful
// search.
func celebrate(out io.Writer, total int) {
	fmt.Fprintf(out, "\a✨ Найдено фильмов: %d\n\n", total)
}
