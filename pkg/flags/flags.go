// Package flags pivots the existence of qualifying compliance documents into
// a fixed set of named boolean flags per worker, without inflating the worker
// grain. Each flag is a (name, predicate) pair folded over the worker's
// documents with logical OR; predicates may overlap, so one document can set
// several flags.
package flags

import (
	"github.com/talentops/ledgerlens/pkg/rank"
	"github.com/talentops/ledgerlens/pkg/records"
)

// Predicate is the category membership test backing one flag.
type Predicate func(records.ComplianceDoc) bool

// Flag pairs an output flag name with its existence predicate.
type Flag struct {
	Name  string
	Match Predicate
}

// Set is the fixed, ordered collection of flags computed per run. A
// predicate that never matches any document yields a permanently-false flag
// for every worker; that is expected, not an error.
type Set []Flag

// Row holds the flag values for one worker. Every flag of the Set is
// present; flags are never null, absence of evidence means false.
type Row map[string]bool

// EmptyRow returns a row with every flag of the set explicitly false.
func (s Set) EmptyRow() Row {
	row := make(Row, len(s))
	for _, f := range s {
		row[f.Name] = false
	}
	return row
}

// Names returns the flag names in set order.
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// LabelFlag builds a flag that is true when a document carries the given
// category label.
func LabelFlag(name, categoryLabel string) Flag {
	return Flag{
		Name: name,
		Match: func(d records.ComplianceDoc) bool {
			return d.CategoryLabel == categoryLabel
		},
	}
}

// Aggregate computes one flag row per worker that has at least one enabled
// document. Workers without any are absent; callers default-fill with
// EmptyRow at assembly time.
func Aggregate(set Set, docs []records.ComplianceDoc) map[records.WorkerID]Row {
	enabled := rank.Filter(docs, func(d records.ComplianceDoc) bool {
		return !d.Disabled
	})

	rows := make(map[records.WorkerID]Row)
	for workerID, group := range rank.GroupBy(enabled, ownerOf) {
		row := set.EmptyRow()
		for _, doc := range group {
			for _, f := range set {
				if !row[f.Name] && f.Match(doc) {
					row[f.Name] = true
				}
			}
		}
		rows[workerID] = row
	}
	return rows
}

func ownerOf(d records.ComplianceDoc) records.WorkerID {
	return d.WorkerID
}
