// Package jobs tracks background processes launched by the shell.
//
// A Registry holds one entry per background child in launch order. Sweep
// polls every entry without blocking, returns copies split into running and
// finished jobs, and drops the finished ones, so each finished job is reported
// exactly once.
package jobs
