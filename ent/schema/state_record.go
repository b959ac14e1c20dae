package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StateRecord is a named JSON blob holding mutable learner state.
// One row per name; saves replace the whole value.
type StateRecord struct {
	ent.Schema
}

func (StateRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty().
			Comment("Record key, e.g. user_progress"),
		field.JSON("data", map[string]any{}).
			Comment("Full record value as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (StateRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
