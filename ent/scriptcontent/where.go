// Code generated by ent, DO NOT EDIT.

package scriptcontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/textloom/textloom/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldID, id))
}

// SubTaskID applies equality check predicate on the "sub_task_id" field. It's identical to SubTaskIDEQ.
func SubTaskID(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldSubTaskID, v))
}

// Style applies equality check predicate on the "style" field. It's identical to StyleEQ.
func Style(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldStyle, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldWordCount, v))
}

// SceneCount applies equality check predicate on the "scene_count" field. It's identical to SceneCountEQ.
func SceneCount(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldSceneCount, v))
}

// EstimatedDurationS applies equality check predicate on the "estimated_duration_s" field. It's identical to EstimatedDurationSEQ.
func EstimatedDurationS(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldEstimatedDurationS, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldCreatedAt, v))
}

// SubTaskIDEQ applies the EQ predicate on the "sub_task_id" field.
func SubTaskIDEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldSubTaskID, v))
}

// SubTaskIDNEQ applies the NEQ predicate on the "sub_task_id" field.
func SubTaskIDNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldSubTaskID, v))
}

// SubTaskIDIn applies the In predicate on the "sub_task_id" field.
func SubTaskIDIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldSubTaskID, vs...))
}

// SubTaskIDNotIn applies the NotIn predicate on the "sub_task_id" field.
func SubTaskIDNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldSubTaskID, vs...))
}

// SubTaskIDGT applies the GT predicate on the "sub_task_id" field.
func SubTaskIDGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldSubTaskID, v))
}

// SubTaskIDGTE applies the GTE predicate on the "sub_task_id" field.
func SubTaskIDGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldSubTaskID, v))
}

// SubTaskIDLT applies the LT predicate on the "sub_task_id" field.
func SubTaskIDLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldSubTaskID, v))
}

// SubTaskIDLTE applies the LTE predicate on the "sub_task_id" field.
func SubTaskIDLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldSubTaskID, v))
}

// SubTaskIDContains applies the Contains predicate on the "sub_task_id" field.
func SubTaskIDContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldSubTaskID, v))
}

// SubTaskIDHasPrefix applies the HasPrefix predicate on the "sub_task_id" field.
func SubTaskIDHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldSubTaskID, v))
}

// SubTaskIDHasSuffix applies the HasSuffix predicate on the "sub_task_id" field.
func SubTaskIDHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldSubTaskID, v))
}

// SubTaskIDEqualFold applies the EqualFold predicate on the "sub_task_id" field.
func SubTaskIDEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldSubTaskID, v))
}

// SubTaskIDContainsFold applies the ContainsFold predicate on the "sub_task_id" field.
func SubTaskIDContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldSubTaskID, v))
}

// StyleEQ applies the EQ predicate on the "style" field.
func StyleEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldStyle, v))
}

// StyleNEQ applies the NEQ predicate on the "style" field.
func StyleNEQ(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldStyle, v))
}

// StyleIn applies the In predicate on the "style" field.
func StyleIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldStyle, vs...))
}

// StyleNotIn applies the NotIn predicate on the "style" field.
func StyleNotIn(vs ...string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldStyle, vs...))
}

// StyleGT applies the GT predicate on the "style" field.
func StyleGT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldStyle, v))
}

// StyleGTE applies the GTE predicate on the "style" field.
func StyleGTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldStyle, v))
}

// StyleLT applies the LT predicate on the "style" field.
func StyleLT(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldStyle, v))
}

// StyleLTE applies the LTE predicate on the "style" field.
func StyleLTE(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldStyle, v))
}

// StyleContains applies the Contains predicate on the "style" field.
func StyleContains(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContains(FieldStyle, v))
}

// StyleHasPrefix applies the HasPrefix predicate on the "style" field.
func StyleHasPrefix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasPrefix(FieldStyle, v))
}

// StyleHasSuffix applies the HasSuffix predicate on the "style" field.
func StyleHasSuffix(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldHasSuffix(FieldStyle, v))
}

// StyleEqualFold applies the EqualFold predicate on the "style" field.
func StyleEqualFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEqualFold(FieldStyle, v))
}

// StyleContainsFold applies the ContainsFold predicate on the "style" field.
func StyleContainsFold(v string) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldContainsFold(FieldStyle, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldWordCount, v))
}

// SceneCountEQ applies the EQ predicate on the "scene_count" field.
func SceneCountEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldSceneCount, v))
}

// SceneCountNEQ applies the NEQ predicate on the "scene_count" field.
func SceneCountNEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldSceneCount, v))
}

// SceneCountIn applies the In predicate on the "scene_count" field.
func SceneCountIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldSceneCount, vs...))
}

// SceneCountNotIn applies the NotIn predicate on the "scene_count" field.
func SceneCountNotIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldSceneCount, vs...))
}

// SceneCountGT applies the GT predicate on the "scene_count" field.
func SceneCountGT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldSceneCount, v))
}

// SceneCountGTE applies the GTE predicate on the "scene_count" field.
func SceneCountGTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldSceneCount, v))
}

// SceneCountLT applies the LT predicate on the "scene_count" field.
func SceneCountLT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldSceneCount, v))
}

// SceneCountLTE applies the LTE predicate on the "scene_count" field.
func SceneCountLTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldSceneCount, v))
}

// EstimatedDurationSEQ applies the EQ predicate on the "estimated_duration_s" field.
func EstimatedDurationSEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldEstimatedDurationS, v))
}

// EstimatedDurationSNEQ applies the NEQ predicate on the "estimated_duration_s" field.
func EstimatedDurationSNEQ(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldEstimatedDurationS, v))
}

// EstimatedDurationSIn applies the In predicate on the "estimated_duration_s" field.
func EstimatedDurationSIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldEstimatedDurationS, vs...))
}

// EstimatedDurationSNotIn applies the NotIn predicate on the "estimated_duration_s" field.
func EstimatedDurationSNotIn(vs ...int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldEstimatedDurationS, vs...))
}

// EstimatedDurationSGT applies the GT predicate on the "estimated_duration_s" field.
func EstimatedDurationSGT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldEstimatedDurationS, v))
}

// EstimatedDurationSGTE applies the GTE predicate on the "estimated_duration_s" field.
func EstimatedDurationSGTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldEstimatedDurationS, v))
}

// EstimatedDurationSLT applies the LT predicate on the "estimated_duration_s" field.
func EstimatedDurationSLT(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldEstimatedDurationS, v))
}

// EstimatedDurationSLTE applies the LTE predicate on the "estimated_duration_s" field.
func EstimatedDurationSLTE(v int) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldEstimatedDurationS, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScriptContent {
	return predicate.ScriptContent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSubTask applies the HasEdge predicate on the "sub_task" edge.
func HasSubTask() predicate.ScriptContent {
	return predicate.ScriptContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SubTaskTable, SubTaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubTaskWith applies the HasEdge predicate on the "sub_task" edge with a given conditions (other predicates).
func HasSubTaskWith(preds ...predicate.SubVideoTask) predicate.ScriptContent {
	return predicate.ScriptContent(func(s *sql.Selector) {
		step := newSubTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScriptContent) predicate.ScriptContent {
	return predicate.ScriptContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScriptContent) predicate.ScriptContent {
	return predicate.ScriptContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScriptContent) predicate.ScriptContent {
	return predicate.ScriptContent(sql.NotPredicates(p))
}
