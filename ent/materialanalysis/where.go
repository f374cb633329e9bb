// Code generated by ent, DO NOT EDIT.

package materialanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/textloom/textloom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldTaskID, v))
}

// MediaItemID applies equality check predicate on the "media_item_id" field. It's identical to MediaItemIDEQ.
func MediaItemID(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldMediaItemID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldDescription, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldTheme, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldQualityScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldTaskID, v))
}

// MediaItemIDEQ applies the EQ predicate on the "media_item_id" field.
func MediaItemIDEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldMediaItemID, v))
}

// MediaItemIDNEQ applies the NEQ predicate on the "media_item_id" field.
func MediaItemIDNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldMediaItemID, v))
}

// MediaItemIDIn applies the In predicate on the "media_item_id" field.
func MediaItemIDIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldMediaItemID, vs...))
}

// MediaItemIDNotIn applies the NotIn predicate on the "media_item_id" field.
func MediaItemIDNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldMediaItemID, vs...))
}

// MediaItemIDGT applies the GT predicate on the "media_item_id" field.
func MediaItemIDGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldMediaItemID, v))
}

// MediaItemIDGTE applies the GTE predicate on the "media_item_id" field.
func MediaItemIDGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldMediaItemID, v))
}

// MediaItemIDLT applies the LT predicate on the "media_item_id" field.
func MediaItemIDLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldMediaItemID, v))
}

// MediaItemIDLTE applies the LTE predicate on the "media_item_id" field.
func MediaItemIDLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldMediaItemID, v))
}

// MediaItemIDContains applies the Contains predicate on the "media_item_id" field.
func MediaItemIDContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldMediaItemID, v))
}

// MediaItemIDHasPrefix applies the HasPrefix predicate on the "media_item_id" field.
func MediaItemIDHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldMediaItemID, v))
}

// MediaItemIDHasSuffix applies the HasSuffix predicate on the "media_item_id" field.
func MediaItemIDHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldMediaItemID, v))
}

// MediaItemIDEqualFold applies the EqualFold predicate on the "media_item_id" field.
func MediaItemIDEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldMediaItemID, v))
}

// MediaItemIDContainsFold applies the ContainsFold predicate on the "media_item_id" field.
func MediaItemIDContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldMediaItemID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldDescription, v))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldTags))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeIsNil applies the IsNil predicate on the "theme" field.
func ThemeIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldTheme))
}

// ThemeNotNil applies the NotNil predicate on the "theme" field.
func ThemeNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldTheme))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldContainsFold(FieldTheme, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldStatus, vs...))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldQualityScore, v))
}

// QualityScoreIsNil applies the IsNil predicate on the "quality_score" field.
func QualityScoreIsNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIsNull(FieldQualityScore))
}

// QualityScoreNotNil applies the NotNil predicate on the "quality_score" field.
func QualityScoreNotNil() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotNull(FieldQualityScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MaterialAnalysis) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MaterialAnalysis) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MaterialAnalysis) predicate.MaterialAnalysis {
	return predicate.MaterialAnalysis(sql.NotPredicates(p))
}
