package shell

import (
	"jobshell/internal/jobs"
)

func (s *Shell) executeBuiltin(args []string) (bool, error) {
	switch {
	case s.isStatusCommand(args[0]):
		return true, s.showJobs()
	default:
		return false, nil
	}
}

// showJobs sweeps the registry and prints what it found. Finished jobs are
// dropped by the sweep and never shown again.
func (s *Shell) showJobs() error {
	report := s.registry.Sweep()
	return jobs.WriteReport(s.stdout, report, s.config.Color)
}
