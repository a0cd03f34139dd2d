package domain

// TargetType identifies the kind of tracked object (polymorphic discriminator
// stored with every change entry).
type TargetType string

const (
	TargetTypeTopic TargetType = "TOPIC"
)

func (t TargetType) String() string { return string(t) }

// IsValid reports whether the kind is usable as a discriminator.
// Kinds are open-ended, so any non-blank value is accepted.
func (t TargetType) IsValid() bool {
	return t != ""
}

// Operation represents the kind of mutation recorded in the change log.
type Operation string

const (
	OperationCreate Operation = "CREATE"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

func (o Operation) String() string { return string(o) }

func (o Operation) IsValid() bool {
	switch o {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// RelationAction is the phase of a many-to-many membership change as
// reported by the persistence layer.
type RelationAction string

const (
	RelationPreAdd     RelationAction = "pre_add"
	RelationPostAdd    RelationAction = "post_add"
	RelationPreRemove  RelationAction = "pre_remove"
	RelationPostRemove RelationAction = "post_remove"
	RelationPreClear   RelationAction = "pre_clear"
	RelationPostClear  RelationAction = "post_clear"
)

func (a RelationAction) String() string { return string(a) }

func (a RelationAction) IsValid() bool {
	switch a {
	case RelationPreAdd, RelationPostAdd, RelationPreRemove,
		RelationPostRemove, RelationPreClear, RelationPostClear:
		return true
	}
	return false
}

// IsSettled reports whether the membership has already been written, i.e.
// the action is one of the post_* notifications.
func (a RelationAction) IsSettled() bool {
	switch a {
	case RelationPostAdd, RelationPostRemove, RelationPostClear:
		return true
	}
	return false
}
