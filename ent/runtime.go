// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lingua/ent/activityevent"
	"github.com/abhisek/lingua/ent/badgeevent"
	"github.com/abhisek/lingua/ent/schema"
	"github.com/abhisek/lingua/ent/staterecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescTimestamp is the schema descriptor for timestamp field.
	activityeventDescTimestamp := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	activityevent.DefaultTimestamp = activityeventDescTimestamp.Default.(func() time.Time)
	// activityeventDescKind is the schema descriptor for kind field.
	activityeventDescKind := activityeventFields[0].Descriptor()
	// activityevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	activityevent.KindValidator = activityeventDescKind.Validators[0].(func(string) error)
	// activityeventDescModuleID is the schema descriptor for module_id field.
	activityeventDescModuleID := activityeventFields[1].Descriptor()
	// activityevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	activityevent.ModuleIDValidator = activityeventDescModuleID.Validators[0].(func(string) error)
	// activityeventDescItemID is the schema descriptor for item_id field.
	activityeventDescItemID := activityeventFields[2].Descriptor()
	// activityevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	activityevent.ItemIDValidator = activityeventDescItemID.Validators[0].(func(string) error)
	// activityeventDescTitle is the schema descriptor for title field.
	activityeventDescTitle := activityeventFields[3].Descriptor()
	// activityevent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	activityevent.TitleValidator = activityeventDescTitle.Validators[0].(func(string) error)
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescBadgeID is the schema descriptor for badge_id field.
	badgeeventDescBadgeID := badgeeventFields[0].Descriptor()
	// badgeevent.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeevent.BadgeIDValidator = badgeeventDescBadgeID.Validators[0].(func(string) error)
	// badgeeventDescName is the schema descriptor for name field.
	badgeeventDescName := badgeeventFields[1].Descriptor()
	// badgeevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	badgeevent.NameValidator = badgeeventDescName.Validators[0].(func(string) error)
	// badgeeventDescDescription is the schema descriptor for description field.
	badgeeventDescDescription := badgeeventFields[2].Descriptor()
	// badgeevent.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	badgeevent.DescriptionValidator = badgeeventDescDescription.Validators[0].(func(string) error)
	// badgeeventDescIcon is the schema descriptor for icon field.
	badgeeventDescIcon := badgeeventFields[3].Descriptor()
	// badgeevent.IconValidator is a validator for the "icon" field. It is called by the builders before save.
	badgeevent.IconValidator = badgeeventDescIcon.Validators[0].(func(string) error)
	// badgeeventDescColor is the schema descriptor for color field.
	badgeeventDescColor := badgeeventFields[4].Descriptor()
	// badgeevent.ColorValidator is a validator for the "color" field. It is called by the builders before save.
	badgeevent.ColorValidator = badgeeventDescColor.Validators[0].(func(string) error)
	// badgeeventDescSource is the schema descriptor for source field.
	badgeeventDescSource := badgeeventFields[5].Descriptor()
	// badgeevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	badgeevent.SourceValidator = badgeeventDescSource.Validators[0].(func(string) error)
	staterecordFields := schema.StateRecord{}.Fields()
	_ = staterecordFields
	// staterecordDescName is the schema descriptor for name field.
	staterecordDescName := staterecordFields[0].Descriptor()
	// staterecord.NameValidator is a validator for the "name" field. It is called by the builders before save.
	staterecord.NameValidator = staterecordDescName.Validators[0].(func(string) error)
	// staterecordDescUpdatedAt is the schema descriptor for updated_at field.
	staterecordDescUpdatedAt := staterecordFields[2].Descriptor()
	// staterecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staterecord.DefaultUpdatedAt = staterecordDescUpdatedAt.Default.(func() time.Time)
	// staterecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staterecord.UpdateDefaultUpdatedAt = staterecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
