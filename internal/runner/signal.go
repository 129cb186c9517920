package runner

import (
	"os"
	"os/signal"
)

// holdInterrupts keeps Ctrl-C from killing the launcher while the child runs;
// the child shares the terminal and handles the interrupt itself.
func holdInterrupts() func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	return func() { signal.Stop(ch) }
}
