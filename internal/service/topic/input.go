package topic

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/changetrail/internal/domain"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Name        string
	Description *string
}

func (i CreateTopicInput) Validate() error {
	var errs domain.FieldErrors
	checkName(&errs, i.Name)
	checkDescription(&errs, i.Description)
	return errs.Err()
}

// UpdateTopicInput holds a partial topic update. A nil field is left
// unchanged; an empty Description clears it.
type UpdateTopicInput struct {
	TopicID     uuid.UUID
	Name        *string
	Description *string
}

func (i UpdateTopicInput) Validate() error {
	var errs domain.FieldErrors
	checkID(&errs, "topic_id", i.TopicID)
	if i.Name == nil && i.Description == nil {
		errs.Add("input", "at least one field must be provided")
	}
	if i.Name != nil {
		checkName(&errs, *i.Name)
	}
	checkDescription(&errs, i.Description)
	return errs.Err()
}

// params converts the input into trimmed update params.
func (i UpdateTopicInput) params() domain.TopicUpdateParams {
	var p domain.TopicUpdateParams
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	if i.Description != nil {
		desc := strings.TrimSpace(*i.Description)
		p.Description = &desc
	}
	return p
}

// EntryLinkInput identifies one topic/entry link.
type EntryLinkInput struct {
	TopicID uuid.UUID
	EntryID uuid.UUID
}

func (i EntryLinkInput) Validate() error {
	var errs domain.FieldErrors
	checkID(&errs, "topic_id", i.TopicID)
	checkID(&errs, "entry_id", i.EntryID)
	return errs.Err()
}

// HistoryInput selects a topic's change history. Limit 0 means the
// configured cap.
type HistoryInput struct {
	TopicID uuid.UUID
	Limit   int
}

func (i HistoryInput) Validate() error {
	var errs domain.FieldErrors
	checkID(&errs, "topic_id", i.TopicID)
	if i.Limit < 0 {
		errs.Add("limit", "must not be negative")
	}
	return errs.Err()
}

func validateID(field string, id uuid.UUID) error {
	var errs domain.FieldErrors
	checkID(&errs, field, id)
	return errs.Err()
}

func checkID(errs *domain.FieldErrors, field string, id uuid.UUID) {
	if id == uuid.Nil {
		errs.Add(field, "required")
	}
}

func checkName(errs *domain.FieldErrors, raw string) {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		errs.Add("name", "required")
	case len(name) > maxNameLength:
		errs.Addf("name", "max %d characters", maxNameLength)
	}
}

func checkDescription(errs *domain.FieldErrors, desc *string) {
	if desc != nil && len(strings.TrimSpace(*desc)) > maxDescriptionLength {
		errs.Addf("description", "max %d characters", maxDescriptionLength)
	}
}
