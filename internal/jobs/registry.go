package jobs

import (
	"log/slog"
	"unicode/utf8"
)

// DefaultCommandLimit bounds the stored command text, in bytes.
const DefaultCommandLimit = 80

// Job is a value copy of a registry entry.
type Job struct {
	ID      int
	PID     int
	Command string
	Outcome Outcome
}

// Report is the result of a Sweep. Both lists keep registration order.
type Report struct {
	Running  []Job
	Finished []Job
}

// Options configure a Registry. The zero value is usable.
type Options struct {
	// CommandLimit caps Job.Command. Zero means DefaultCommandLimit.
	CommandLimit int
	Logger       *slog.Logger
}

// Registry is an ordered collection of background jobs. It is owned by a
// single interpreter loop and is not safe for concurrent use.
type Registry struct {
	jobs         []Job
	nextID       int
	checker      StatusChecker
	commandLimit int
	logger       *slog.Logger
}

// NewRegistry returns an empty Registry that polls processes with checker.
func NewRegistry(checker StatusChecker, opts Options) *Registry {
	if checker == nil {
		checker = WaitChecker{}
	}
	limit := opts.CommandLimit
	if limit <= 0 {
		limit = DefaultCommandLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		nextID:       1,
		checker:      checker,
		commandLimit: limit,
		logger:       logger,
	}
}

// Register appends a job for pid at the tail and returns its sequence id.
func (r *Registry) Register(pid int, command string) int {
	id := r.nextID
	r.nextID++

	r.jobs = append(r.jobs, Job{
		ID:      id,
		PID:     pid,
		Command: truncate(command, r.commandLimit),
	})
	r.logger.Debug("job registered", "id", id, "pid", pid)

	return id
}

// Unregister removes the job with the given id. It reports whether a job was
// removed; an unknown id leaves the registry unchanged.
func (r *Registry) Unregister(id int) bool {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.remove(i)
			r.logger.Debug("job unregistered", "id", id)
			return true
		}
	}
	return false
}

// Sweep checks every job once without blocking. Jobs still running are
// copied into Report.Running and kept. Jobs in any other state are copied
// into Report.Finished and removed. A job whose status query fails is logged
// and kept, and appears in neither list.
func (r *Registry) Sweep() Report {
	var report Report

	kept := r.jobs[:0]
	for _, job := range r.jobs {
		outcome, err := r.checker.Check(job.PID)
		if err != nil {
			r.logger.Warn("job status query failed", "id", job.ID, "pid", job.PID, "error", err)
			kept = append(kept, job)
			continue
		}

		if !outcome.Finished() {
			report.Running = append(report.Running, job)
			kept = append(kept, job)
			continue
		}

		job.Outcome = outcome
		report.Finished = append(report.Finished, job)
		r.logger.Debug("job finished", "id", job.ID, "pid", job.PID, "outcome", outcome)
	}

	// Clear the tail so dropped entries don't linger in the backing array.
	for i := len(kept); i < len(r.jobs); i++ {
		r.jobs[i] = Job{}
	}
	r.jobs = kept

	return report
}

// Len returns the number of tracked jobs.
func (r *Registry) Len() int {
	return len(r.jobs)
}

// Jobs returns a copy of the tracked jobs in registration order.
func (r *Registry) Jobs() []Job {
	return append([]Job(nil), r.jobs...)
}

func (r *Registry) remove(i int) {
	copy(r.jobs[i:], r.jobs[i+1:])
	r.jobs[len(r.jobs)-1] = Job{}
	r.jobs = r.jobs[:len(r.jobs)-1]
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	s = s[:limit]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
