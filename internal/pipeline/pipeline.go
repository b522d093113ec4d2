// Package pipeline runs the external SISRS pipeline executable and checks
// its outputs against reference data from earlier, known-good runs.
//
// The pipeline itself, and the BAM comparison tool, are opaque external
// commands. Nothing here parses their file formats; this package only
// invokes them and compares bytes.
package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/BobLiterman/SISRS/config"
)

// Runner executes an external command and returns its stdout. A non-zero
// exit surfaces as an error carrying the command's stderr.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands on the local machine, blocking until they exit.
type ExecRunner struct{}

// Run executes the named command and waits on it to finish.
func (ExecRunner) Run(name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("failed to execute %s: %v: %s", name, err, stderr.Bytes())
	}
	return stdout.Bytes(), nil
}

// Pipeline invokes the external pipeline command with its fixed flag sets.
type Pipeline struct {
	runner Runner

	command    string
	processors int
	assembler  string
	coverage   int
}

// New returns a Pipeline that invokes the executable named in c through r.
func New(r Runner, c config.Config) Pipeline {
	return Pipeline{
		runner:     r,
		command:    c.Pipeline,
		processors: c.Processors,
		assembler:  c.Assembler,
		coverage:   c.Coverage,
	}
}

// Version probes that the pipeline executable is installed and runnable.
func (p Pipeline) Version() error {
	_, err := p.runner.Run(p.command, "--version")
	return err
}

// AlignContigs runs the pipeline's contig-alignment stage over the raw
// read data in dataDir, writing its results under outDir.
func (p Pipeline) AlignContigs(dataDir, outDir string) error {
	_, err := p.runner.Run(p.command,
		"-p", strconv.Itoa(p.processors),
		"-a", p.assembler,
		"-c", strconv.Itoa(p.coverage),
		"-f", dataDir,
		"-z", outDir,
		"align_contigs",
	)
	return err
}

// OutputAlignment runs the pipeline's alignment-output stage over the
// fixed-site data in dataDir, writing its results under outDir.
func (p Pipeline) OutputAlignment(dataDir, outDir string) error {
	_, err := p.runner.Run(p.command,
		"-f", dataDir,
		"-z", outDir,
		"output_alignment",
	)
	return err
}

// ResetDir clears any previous run's output and recreates path empty.
func ResetDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to clear output dir %s: %v", path, err)
	}
	if err := os.MkdirAll(path, 0777); err != nil {
		return fmt.Errorf("failed to recreate output dir %s: %v", path, err)
	}
	return nil
}
