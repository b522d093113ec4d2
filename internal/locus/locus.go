// Package locus regroups per-species FASTA files into per-locus FASTA files
// ready for alignment.
//
// Each input file holds every locus sequenced for one species, with the
// locus (and, when phased, the allele) encoded in the record identifier.
// Downstream alignment wants the transpose of that: one file per locus with
// a record for each species that sequenced it.
package locus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"
	"github.com/charmbracelet/log"
)

// Groups accumulates sequence records keyed by locus. Within a group,
// records keep the order they were read in.
type Groups struct {
	keys    []string // locus keys in first-seen order
	records map[string][]seq.Sequence
}

// NewGroups returns an empty Groups ready for AddFile calls.
func NewGroups() *Groups {
	return &Groups{records: make(map[string][]seq.Sequence)}
}

// add appends s to the group for key, creating the group if absent.
func (g *Groups) add(key string, s seq.Sequence) {
	if _, seen := g.records[key]; !seen {
		g.keys = append(g.keys, key)
	}
	g.records[key] = append(g.records[key], s)
}

// Loci returns the locus keys in the order they were first seen.
func (g *Groups) Loci() []string {
	keys := make([]string, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// Records returns the accumulated records for one locus.
func (g *Groups) Records(key string) []seq.Sequence {
	return g.records[key]
}

// SplitID breaks an underscore-delimited record identifier into its locus
// key and allele tag. With alleles > 1 the final two tokens name the
// record's haplotype and the remaining tokens, rejoined, are the locus;
// otherwise the whole identifier is the locus and the tag is empty.
//
// So with alleles=2, "geneA_1_2" splits into locus "geneA" and tag "12".
func SplitID(id string, alleles int) (locusKey, alleleTag string, err error) {
	if alleles < 1 {
		return "", "", fmt.Errorf("allele count must be at least 1, got %d", alleles)
	}
	if alleles == 1 {
		return id, "", nil
	}

	tokens := strings.Split(id, "_")
	if len(tokens) < 3 {
		return "", "", fmt.Errorf(
			"record id %q is too short to carry allele tags: need at least 3 '_' separated fields, got %d",
			id, len(tokens))
	}

	tag := tokens[len(tokens)-2] + tokens[len(tokens)-1]
	return strings.Join(tokens[:len(tokens)-2], "_"), tag, nil
}

// AddFile reads every record in one species' FASTA file and files each
// under its locus. The species name is the file's base name without its
// extension; record identifiers are rewritten to "<species>" or, when the
// data is phased, "<species>_<allele-tag>". Sequences pass through
// untouched.
func (g *Groups) AddFile(path string, alleles int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open species file: %v", err)
	}
	defer f.Close()

	species := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	r := fasta.NewReader(f)
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %v", path, err)
		}

		// the identifier is the header's first whitespace-separated field
		id := s.Name
		if fields := strings.Fields(id); len(fields) > 0 {
			id = fields[0]
		}

		key, tag, err := SplitID(id, alleles)
		if err != nil {
			return fmt.Errorf("%s: %v", path, err)
		}

		s.Name = species
		if tag != "" {
			s.Name = species + "_" + tag
		}
		g.add(key, s)
	}

	return nil
}

// Write drains the groups into dir, one "<locus>.fa" per group,
// overwriting any file already there by that name.
func (g *Groups) Write(dir string) error {
	for _, key := range g.keys {
		out := filepath.Join(dir, key+".fa")

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create locus file: %v", err)
		}
		if err := fasta.NewWriter(f).WriteAll(g.records[key]); err != nil {
			f.Close()
			return fmt.Errorf("failed to write locus file %s: %v", out, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close locus file %s: %v", out, err)
		}
	}
	return nil
}

// Regroup reads every .fa file in dir and rewrites the directory's
// contents as one file per locus. Every input file is read before the
// first output file is written, so the per-locus files never feed back
// into the scan. Any read, parse, or write error aborts the whole run.
func Regroup(logger *log.Logger, dir string, alleles int) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.fa"))
	if err != nil {
		return fmt.Errorf("failed to glob %s: %v", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .fa files found in %s", dir)
	}
	logger.Info("regrouping loci", "dir", dir, "species", len(files), "alleles", alleles)

	groups := NewGroups()
	for _, f := range files {
		logger.Info("reading data", "species", filepath.Base(f))
		if err := groups.AddFile(f, alleles); err != nil {
			return err
		}
	}

	logger.Info("writing locus files", "loci", len(groups.keys))
	return groups.Write(dir)
}
