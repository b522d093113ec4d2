// Package test verifies the external SISRS pipeline end to end: each stage
// is run over premade data and its outputs are compared against reference
// outputs from a known-good run.
//
// The stage fixtures live under pipeline_stages/ (see the data-dir
// setting); scratch output is recreated under output/ before each check.
// Checks are skipped on machines without the pipeline installed.
package test

import (
	"os/exec"
	"path"
	"testing"

	"github.com/BobLiterman/SISRS/config"
	"github.com/BobLiterman/SISRS/internal/pipeline"
)

// taxa covered by the premade primate dataset.
var taxa = []string{
	"GorGor",
	// TODO: restore HomSap once its premade BAM is regenerated
	"HylMol",
	"MacFas",
	"MacMul",
	"PanPan",
	"PanTro",
	"PonPyg",
}

// requireTools skips the calling test unless every named executable is on PATH.
func requireTools(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s is not installed", name)
		}
	}
}

func Test_Pipeline(t *testing.T) {
	c := config.New()
	requireTools(t, c.Pipeline)

	if err := pipeline.New(pipeline.ExecRunner{}, c).Version(); err != nil {
		t.Fatalf("pipeline is not runnable: %v", err)
	}
}

func Test_AlignContigs(t *testing.T) {
	c := config.New()
	requireTools(t, c.Pipeline, c.BamDiff)

	if err := pipeline.ResetDir(c.OutDir); err != nil {
		t.Fatal(err)
	}

	dataDir := path.Join(c.DataDir, "0_RawData_PremadeGenome")
	expBase := path.Join(c.DataDir, "1_alignContigs")

	p := pipeline.New(pipeline.ExecRunner{}, c)
	if err := p.AlignContigs(dataDir, c.OutDir); err != nil {
		t.Fatalf("align_contigs failed: %v", err)
	}

	same, err := pipeline.DirsMatch(
		path.Join(c.OutDir, "premadeoutput"),
		path.Join(expBase, "premadeoutput"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !same {
		t.Error("premadeoutput differs from the reference run")
	}

	for _, taxon := range taxa {
		out := path.Join(c.OutDir, taxon, taxon+".bam")
		exp := path.Join(expBase, taxon, taxon+".bam")

		same, err := pipeline.BamsMatch(pipeline.ExecRunner{}, c.BamDiff, out, exp)
		if err != nil {
			t.Errorf("%s: %v", taxon, err)
			continue
		}
		if !same {
			t.Errorf("%s alignment differs from the reference run", taxon)
		}
	}
}

func Test_OutputAlignment(t *testing.T) {
	c := config.New()
	requireTools(t, c.Pipeline)

	if err := pipeline.ResetDir(c.OutDir); err != nil {
		t.Fatal(err)
	}

	p := pipeline.New(pipeline.ExecRunner{}, c)
	if err := p.OutputAlignment(path.Join(c.DataDir, "2_identifyFixedSites"), c.OutDir); err != nil {
		t.Fatalf("output_alignment failed: %v", err)
	}

	same, err := pipeline.FilesMatch(
		path.Join(c.OutDir, "alignment.nex"),
		path.Join(c.DataDir, "3_outputAlignment", "alignment.nex"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !same {
		t.Error("alignment.nex differs from the reference run")
	}
}
