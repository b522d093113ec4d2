package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestConfig_New(t *testing.T) {
	c := New()

	if c.Pipeline != "sisrs-python" {
		t.Errorf("default pipeline = %q, want sisrs-python", c.Pipeline)
	}
	if c.BamDiff != "bam" {
		t.Errorf("default bam-diff = %q, want bam", c.BamDiff)
	}
	if c.Processors != 8 || c.Coverage != 0 {
		t.Errorf("unexpected default run settings: %+v", c)
	}
	if c.Assembler != "premade" {
		t.Errorf("default assembler = %q, want premade", c.Assembler)
	}
	if c.DataDir != "pipeline_stages" || c.OutDir != "output" {
		t.Errorf("unexpected default directories: %+v", c)
	}
}

func TestConfig_Override(t *testing.T) {
	viper.Set("processors", 2)
	t.Cleanup(viper.Reset)

	if c := New(); c.Processors != 2 {
		t.Errorf("processors = %d, want the bound override 2", c.Processors)
	}
}
