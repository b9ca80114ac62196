package pidfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// PIDFile manages a process ID file for daemon single-instance enforcement
type PIDFile struct {
	path string
}

// New creates a new PIDFile manager
func New(path string) *PIDFile {
	return &PIDFile{path: path}
}

// Acquire attempts to acquire the PID file lock.
// Returns an error if another instance is already running.
func (p *PIDFile) Acquire() error {
	if _, err := os.Stat(p.path); err == nil {
		pid, err := p.readPID()
		if err != nil {
			// Unreadable PID file - remove it and continue
			_ = os.Remove(p.path)
		} else if isProcessRunning(pid) {
			return fmt.Errorf("daemon is already running (PID %d)", pid)
		} else {
			// Stale PID file from a dead process
			_ = os.Remove(p.path)
		}
	}

	pidData := fmt.Sprintf("%d\n", os.Getpid())
	if err := os.WriteFile(p.path, []byte(pidData), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	return nil
}

// Release removes the PID file
func (p *PIDFile) Release() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// KillExisting terminates the process named in the PID file, waiting briefly
// for it to exit
func (p *PIDFile) KillExisting() error {
	pid, err := p.readPID()
	if err != nil {
		return fmt.Errorf("failed to read PID file: %w", err)
	}

	if !isProcessRunning(pid) {
		_ = os.Remove(p.path)
		return nil
	}

	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal PID %d: %w", pid, err)
	}

	// Give the process a moment to shut down cleanly
	for i := 0; i < 50; i++ {
		if !isProcessRunning(pid) {
			_ = os.Remove(p.path)
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("process %d did not exit after SIGTERM", pid)
}

func (p *PIDFile) readPID() (int, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// isProcessRunning checks whether a PID names a live process
func isProcessRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 probes for existence without delivering anything
	return process.Signal(syscall.Signal(0)) == nil
}
