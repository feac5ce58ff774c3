package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// DocumentVersion is bumped whenever the document shape changes.
const DocumentVersion = "1"

// Document is the structured form of an analysis shared by JSON and YAML.
type Document struct {
	Version string     `json:"version" yaml:"version"`
	Summary Summary    `json:"summary" yaml:"summary"`
	Files   []m.File   `json:"files" yaml:"files"`
	Mutants []m.Mutant `json:"mutants" yaml:"mutants"`
	Groups  []Group    `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Summary holds the headline counts.
type Summary struct {
	Files   int                   `json:"files" yaml:"files"`
	Mutants int                   `json:"mutants" yaml:"mutants"`
	Groups  int                   `json:"groups" yaml:"groups"`
	ByKind  map[m.MutatorKind]int `json:"byKind" yaml:"byKind"`
}

// Group is the serialized form of a mutant group. Instances refer to
// entries of Document.Mutants.
type Group struct {
	ID          string        `json:"id" yaml:"id"`
	MutatorKind m.MutatorKind `json:"mutatorKind" yaml:"mutatorKind"`
	Original    string        `json:"original" yaml:"original"`
	Replacement string        `json:"replacement" yaml:"replacement"`
	Expression  string        `json:"expression" yaml:"expression"`
	Count       int           `json:"count" yaml:"count"`
	Instances   []InstanceRef `json:"instances" yaml:"instances"`
}

// InstanceRef points at one mutant of a group.
type InstanceRef struct {
	FileName m.Path     `json:"fileName" yaml:"fileName"`
	ID       string     `json:"id" yaml:"id"`
	Location m.Location `json:"location" yaml:"location"`
}

// NewDocument builds the document for analysis. Groups are left out when
// flat is set.
func NewDocument(analysis m.Analysis, flat bool) Document {
	doc := Document{
		Version: DocumentVersion,
		Summary: Summary{
			Files:   len(analysis.Files),
			Mutants: len(analysis.Mutants),
			Groups:  len(analysis.Groups),
			ByKind:  m.CountByKind(analysis.Mutants),
		},
		Files:   nonNil(analysis.Files),
		Mutants: nonNil(analysis.Mutants),
	}

	if flat {
		return doc
	}

	doc.Groups = make([]Group, 0, len(analysis.Groups))
	for _, group := range analysis.Groups {
		refs := make([]InstanceRef, 0, group.Count())
		for _, mutant := range group.Instances {
			refs = append(refs, InstanceRef{FileName: mutant.FileName, ID: mutant.ID, Location: mutant.Location})
		}

		doc.Groups = append(doc.Groups, Group{
			ID:          group.ID(),
			MutatorKind: group.Signature.Kind,
			Original:    group.Signature.Original,
			Replacement: group.Signature.Replacement,
			Expression:  group.Signature.Expression,
			Count:       group.Count(),
			Instances:   refs,
		})
	}

	return doc
}

// WriteJSON writes the analysis as indented JSON.
func WriteJSON(w io.Writer, analysis m.Analysis, flat bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(NewDocument(analysis, flat)); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}

	return nil
}

// WriteYAML writes the analysis as YAML.
func WriteYAML(w io.Writer, analysis m.Analysis, flat bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(NewDocument(analysis, flat)); err != nil {
		return fmt.Errorf("failed to encode YAML report: %w", err)
	}

	return enc.Close()
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
