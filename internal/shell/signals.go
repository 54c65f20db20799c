package shell

import (
	"os"
	"os/signal"
	"syscall"
)

// shieldSignals keeps keyboard interrupts from killing the shell while a
// foreground child runs. The terminal delivers them to the child as well, so
// only the child reacts. The returned func restores default handling.
func (s *Shell) shieldSignals() func() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGQUIT)

	return func() {
		signal.Stop(signalChan)
		select {
		case sig := <-signalChan:
			s.logger.Debug("signal received during foreground command", "signal", sig)
		default:
		}
	}
}
