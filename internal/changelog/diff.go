package changelog

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
)

// FullPayload returns one change per tracked field, in declaration order.
// For DELETE the value goes into Old, for every other operation into New.
func FullPayload(fields []string, snap domain.Snapshot, op domain.Operation) []domain.Change {
	changes := make([]domain.Change, 0, len(fields))
	for _, f := range fields {
		v := Stringify(snap[f])
		c := domain.Change{Field: f}
		if op == domain.OperationDelete {
			c.Old = v
		} else {
			c.New = v
		}
		changes = append(changes, c)
	}
	return changes
}

// DiffPayload returns a change for every tracked field whose canonical form
// differs between the two snapshots. Unchanged fields produce nothing, so the
// result is empty when nothing observable changed.
func DiffPayload(fields []string, original, current domain.Snapshot) []domain.Change {
	var changes []domain.Change
	for _, f := range fields {
		oldV, newV := Stringify(original[f]), Stringify(current[f])
		if sameValue(oldV, newV) {
			continue
		}
		changes = append(changes, domain.Change{Field: f, Old: oldV, New: newV})
	}
	return changes
}

// RelationPayload returns the single-record snapshot of a relation.
func RelationPayload(relation string, memberIDs []uuid.UUID) []domain.Change {
	members := MemberList(memberIDs)
	return []domain.Change{{Field: relation, New: &members}}
}

func sameValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
