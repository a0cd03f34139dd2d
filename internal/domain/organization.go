package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tracked fields and relations of a Topic.
const (
	TopicFieldName        = "name"
	TopicFieldDescription = "description"
	TopicRelationEntries  = "entries"
)

// Topic is a named group of entries. It is the sample tracked kind served by
// the HTTP API.
type Topic struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TopicUpdateParams holds the optional fields of a topic update.
// A non-nil empty Description clears it.
type TopicUpdateParams struct {
	Name        *string
	Description *string
}

func (t *Topic) TrackingKind() TargetType { return TargetTypeTopic }

func (t *Topic) TrackingID() *uuid.UUID {
	if t.ID == uuid.Nil {
		return nil
	}
	id := t.ID
	return &id
}

func (t *Topic) TrackingSnapshot() Snapshot {
	return Snapshot{
		TopicFieldName:        t.Name,
		TopicFieldDescription: t.Description,
	}
}

// TopicTrackedFields lists the topic fields recorded in the change log.
func TopicTrackedFields() []string {
	return []string{TopicFieldName, TopicFieldDescription}
}

// TopicTrackedRelations lists the topic relations recorded in the change log.
func TopicTrackedRelations() []string {
	return []string{TopicRelationEntries}
}
