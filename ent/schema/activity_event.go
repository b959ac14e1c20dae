package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records a completed lesson or quiz walkthrough.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").NotEmpty().
			Comment("lesson or quiz"),
		field.String("module_id").NotEmpty(),
		field.String("item_id").NotEmpty().
			Comment("lesson or quiz id within the module"),
		field.String("title").NotEmpty(),
		field.Int("score").Optional().Nillable().
			Comment("quiz score percentage; unset for lessons"),
		field.Int("minutes").
			Comment("estimated minutes spent"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("module_id"),
	}
}
