package domain

import (
	"fmt"
	"slices"
	"strings"
)

// TrackingSpec declares which fields and relations of one kind are tracked
// and where its change entries are stored. Specs are built once when the kind
// is defined and are read-only afterwards.
type TrackingSpec struct {
	Kind      TargetType
	Fields    []string
	Relations []string
	Store     ChangeLogStore
}

// Validate reports configuration errors. A spec that fails validation is a
// programming error and must be rejected at registration time.
func (s *TrackingSpec) Validate() error {
	var errs FieldErrors

	if !s.Kind.IsValid() {
		errs.Add("kind", "required")
	}
	if len(s.Fields) == 0 {
		errs.Add("fields", "at least one tracked field is required")
	}
	validateNames(&errs, "fields", s.Fields)
	validateNames(&errs, "relations", s.Relations)
	if s.Store == nil {
		errs.Add("store", "required")
	}

	return errs.Err()
}

// HasRelation reports whether the relation is declared in the spec.
func (s *TrackingSpec) HasRelation(name string) bool {
	return slices.Contains(s.Relations, name)
}

func validateNames(errs *FieldErrors, group string, names []string) {
	seen := make(map[string]struct{}, len(names))
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			errs.Add(fmt.Sprintf("%s[%d]", group, i), "must not be blank")
			continue
		}
		if _, dup := seen[n]; dup {
			errs.Add(fmt.Sprintf("%s[%d]", group, i), "duplicate name "+n)
			continue
		}
		seen[n] = struct{}{}
	}
}
