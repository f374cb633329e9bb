// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/textloom/textloom/ent/materialanalysis"
	"github.com/textloom/textloom/ent/mediaitem"
	"github.com/textloom/textloom/ent/predicate"
	"github.com/textloom/textloom/ent/scriptcontent"
	"github.com/textloom/textloom/ent/subvideotask"
	"github.com/textloom/textloom/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeMaterialAnalysis = "MaterialAnalysis"
	TypeMediaItem        = "MediaItem"
	TypeScriptContent    = "ScriptContent"
	TypeSubVideoTask     = "SubVideoTask"
	TypeTask             = "Task"
)

// MaterialAnalysisMutation represents an operation that mutates the MaterialAnalysis nodes in the graph.
type MaterialAnalysisMutation struct {
	config
	op               Op
	typ              string
	id               *string
	media_item_id    *string
	description      *string
	tags             *[]string
	appendtags       []string
	theme            *string
	status           *materialanalysis.Status
	quality_score    *float64
	addquality_score *float64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	task             *string
	clearedtask      bool
	done             bool
	oldValue         func(context.Context) (*MaterialAnalysis, error)
	predicates       []predicate.MaterialAnalysis
}

var _ ent.Mutation = (*MaterialAnalysisMutation)(nil)

// materialanalysisOption allows management of the mutation configuration using functional options.
type materialanalysisOption func(*MaterialAnalysisMutation)

// newMaterialAnalysisMutation creates new mutation for the MaterialAnalysis entity.
func newMaterialAnalysisMutation(c config, op Op, opts ...materialanalysisOption) *MaterialAnalysisMutation {
	m := &MaterialAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeMaterialAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMaterialAnalysisID sets the ID field of the mutation.
func withMaterialAnalysisID(id string) materialanalysisOption {
	return func(m *MaterialAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *MaterialAnalysis
		)
		m.oldValue = func(ctx context.Context) (*MaterialAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MaterialAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMaterialAnalysis sets the old MaterialAnalysis of the mutation.
func withMaterialAnalysis(node *MaterialAnalysis) materialanalysisOption {
	return func(m *MaterialAnalysisMutation) {
		m.oldValue = func(context.Context) (*MaterialAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MaterialAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MaterialAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MaterialAnalysis entities.
func (m *MaterialAnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MaterialAnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MaterialAnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MaterialAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *MaterialAnalysisMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *MaterialAnalysisMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *MaterialAnalysisMutation) ResetTaskID() {
	m.task = nil
}

// SetMediaItemID sets the "media_item_id" field.
func (m *MaterialAnalysisMutation) SetMediaItemID(s string) {
	m.media_item_id = &s
}

// MediaItemID returns the value of the "media_item_id" field in the mutation.
func (m *MaterialAnalysisMutation) MediaItemID() (r string, exists bool) {
	v := m.media_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaItemID returns the old "media_item_id" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldMediaItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaItemID: %w", err)
	}
	return oldValue.MediaItemID, nil
}

// ResetMediaItemID resets all changes to the "media_item_id" field.
func (m *MaterialAnalysisMutation) ResetMediaItemID() {
	m.media_item_id = nil
}

// SetDescription sets the "description" field.
func (m *MaterialAnalysisMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MaterialAnalysisMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *MaterialAnalysisMutation) ResetDescription() {
	m.description = nil
}

// SetTags sets the "tags" field.
func (m *MaterialAnalysisMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *MaterialAnalysisMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *MaterialAnalysisMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *MaterialAnalysisMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *MaterialAnalysisMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[materialanalysis.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) TagsCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *MaterialAnalysisMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, materialanalysis.FieldTags)
}

// SetTheme sets the "theme" field.
func (m *MaterialAnalysisMutation) SetTheme(s string) {
	m.theme = &s
}

// Theme returns the value of the "theme" field in the mutation.
func (m *MaterialAnalysisMutation) Theme() (r string, exists bool) {
	v := m.theme
	if v == nil {
		return
	}
	return *v, true
}

// OldTheme returns the old "theme" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldTheme(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTheme is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTheme requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTheme: %w", err)
	}
	return oldValue.Theme, nil
}

// ClearTheme clears the value of the "theme" field.
func (m *MaterialAnalysisMutation) ClearTheme() {
	m.theme = nil
	m.clearedFields[materialanalysis.FieldTheme] = struct{}{}
}

// ThemeCleared returns if the "theme" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) ThemeCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldTheme]
	return ok
}

// ResetTheme resets all changes to the "theme" field.
func (m *MaterialAnalysisMutation) ResetTheme() {
	m.theme = nil
	delete(m.clearedFields, materialanalysis.FieldTheme)
}

// SetStatus sets the "status" field.
func (m *MaterialAnalysisMutation) SetStatus(value materialanalysis.Status) {
	m.status = &value
}

// Status returns the value of the "status" field in the mutation.
func (m *MaterialAnalysisMutation) Status() (r materialanalysis.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldStatus(ctx context.Context) (v materialanalysis.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MaterialAnalysisMutation) ResetStatus() {
	m.status = nil
}

// SetQualityScore sets the "quality_score" field.
func (m *MaterialAnalysisMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *MaterialAnalysisMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldQualityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *MaterialAnalysisMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *MaterialAnalysisMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualityScore clears the value of the "quality_score" field.
func (m *MaterialAnalysisMutation) ClearQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	m.clearedFields[materialanalysis.FieldQualityScore] = struct{}{}
}

// QualityScoreCleared returns if the "quality_score" field was cleared in this mutation.
func (m *MaterialAnalysisMutation) QualityScoreCleared() bool {
	_, ok := m.clearedFields[materialanalysis.FieldQualityScore]
	return ok
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *MaterialAnalysisMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	delete(m.clearedFields, materialanalysis.FieldQualityScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *MaterialAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MaterialAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MaterialAnalysis entity.
// If the MaterialAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MaterialAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MaterialAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *MaterialAnalysisMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[materialanalysis.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *MaterialAnalysisMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *MaterialAnalysisMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *MaterialAnalysisMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the MaterialAnalysisMutation builder.
func (m *MaterialAnalysisMutation) Where(ps ...predicate.MaterialAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MaterialAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MaterialAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MaterialAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MaterialAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MaterialAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MaterialAnalysis).
func (m *MaterialAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MaterialAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.task != nil {
		fields = append(fields, materialanalysis.FieldTaskID)
	}
	if m.media_item_id != nil {
		fields = append(fields, materialanalysis.FieldMediaItemID)
	}
	if m.description != nil {
		fields = append(fields, materialanalysis.FieldDescription)
	}
	if m.tags != nil {
		fields = append(fields, materialanalysis.FieldTags)
	}
	if m.theme != nil {
		fields = append(fields, materialanalysis.FieldTheme)
	}
	if m.status != nil {
		fields = append(fields, materialanalysis.FieldStatus)
	}
	if m.quality_score != nil {
		fields = append(fields, materialanalysis.FieldQualityScore)
	}
	if m.created_at != nil {
		fields = append(fields, materialanalysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MaterialAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case materialanalysis.FieldTaskID:
		return m.TaskID()
	case materialanalysis.FieldMediaItemID:
		return m.MediaItemID()
	case materialanalysis.FieldDescription:
		return m.Description()
	case materialanalysis.FieldTags:
		return m.Tags()
	case materialanalysis.FieldTheme:
		return m.Theme()
	case materialanalysis.FieldStatus:
		return m.Status()
	case materialanalysis.FieldQualityScore:
		return m.QualityScore()
	case materialanalysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MaterialAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case materialanalysis.FieldTaskID:
		return m.OldTaskID(ctx)
	case materialanalysis.FieldMediaItemID:
		return m.OldMediaItemID(ctx)
	case materialanalysis.FieldDescription:
		return m.OldDescription(ctx)
	case materialanalysis.FieldTags:
		return m.OldTags(ctx)
	case materialanalysis.FieldTheme:
		return m.OldTheme(ctx)
	case materialanalysis.FieldStatus:
		return m.OldStatus(ctx)
	case materialanalysis.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case materialanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MaterialAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaterialAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case materialanalysis.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case materialanalysis.FieldMediaItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaItemID(v)
		return nil
	case materialanalysis.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case materialanalysis.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case materialanalysis.FieldTheme:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTheme(v)
		return nil
	case materialanalysis.FieldStatus:
		v, ok := value.(materialanalysis.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case materialanalysis.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case materialanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MaterialAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addquality_score != nil {
		fields = append(fields, materialanalysis.FieldQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MaterialAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case materialanalysis.FieldQualityScore:
		return m.AddedQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MaterialAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case materialanalysis.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MaterialAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(materialanalysis.FieldTags) {
		fields = append(fields, materialanalysis.FieldTags)
	}
	if m.FieldCleared(materialanalysis.FieldTheme) {
		fields = append(fields, materialanalysis.FieldTheme)
	}
	if m.FieldCleared(materialanalysis.FieldQualityScore) {
		fields = append(fields, materialanalysis.FieldQualityScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MaterialAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MaterialAnalysisMutation) ClearField(name string) error {
	switch name {
	case materialanalysis.FieldTags:
		m.ClearTags()
		return nil
	case materialanalysis.FieldTheme:
		m.ClearTheme()
		return nil
	case materialanalysis.FieldQualityScore:
		m.ClearQualityScore()
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MaterialAnalysisMutation) ResetField(name string) error {
	switch name {
	case materialanalysis.FieldTaskID:
		m.ResetTaskID()
		return nil
	case materialanalysis.FieldMediaItemID:
		m.ResetMediaItemID()
		return nil
	case materialanalysis.FieldDescription:
		m.ResetDescription()
		return nil
	case materialanalysis.FieldTags:
		m.ResetTags()
		return nil
	case materialanalysis.FieldTheme:
		m.ResetTheme()
		return nil
	case materialanalysis.FieldStatus:
		m.ResetStatus()
		return nil
	case materialanalysis.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case materialanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MaterialAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, materialanalysis.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MaterialAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case materialanalysis.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MaterialAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MaterialAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MaterialAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, materialanalysis.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MaterialAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case materialanalysis.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MaterialAnalysisMutation) ClearEdge(name string) error {
	switch name {
	case materialanalysis.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MaterialAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case materialanalysis.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown MaterialAnalysis edge %s", name)
}

// MediaItemMutation represents an operation that mutates the MediaItem nodes in the graph.
type MediaItemMutation struct {
	config
	op             Op
	typ            string
	id             *string
	original_url   *string
	local_path     *string
	remote_url     *string
	media_type     *mediaitem.MediaType
	file_size      *int64
	addfile_size   *int64
	mime_type      *string
	resolution     *string
	duration_ms    *int
	addduration_ms *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	task           *string
	clearedtask    bool
	done           bool
	oldValue       func(context.Context) (*MediaItem, error)
	predicates     []predicate.MediaItem
}

var _ ent.Mutation = (*MediaItemMutation)(nil)

// mediaitemOption allows management of the mutation configuration using functional options.
type mediaitemOption func(*MediaItemMutation)

// newMediaItemMutation creates new mutation for the MediaItem entity.
func newMediaItemMutation(c config, op Op, opts ...mediaitemOption) *MediaItemMutation {
	m := &MediaItemMutation{
		config:        c,
		op:            op,
		typ:           TypeMediaItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMediaItemID sets the ID field of the mutation.
func withMediaItemID(id string) mediaitemOption {
	return func(m *MediaItemMutation) {
		var (
			err   error
			once  sync.Once
			value *MediaItem
		)
		m.oldValue = func(ctx context.Context) (*MediaItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MediaItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMediaItem sets the old MediaItem of the mutation.
func withMediaItem(node *MediaItem) mediaitemOption {
	return func(m *MediaItemMutation) {
		m.oldValue = func(context.Context) (*MediaItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MediaItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MediaItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MediaItem entities.
func (m *MediaItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MediaItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MediaItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MediaItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *MediaItemMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *MediaItemMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *MediaItemMutation) ResetTaskID() {
	m.task = nil
}

// SetOriginalURL sets the "original_url" field.
func (m *MediaItemMutation) SetOriginalURL(s string) {
	m.original_url = &s
}

// OriginalURL returns the value of the "original_url" field in the mutation.
func (m *MediaItemMutation) OriginalURL() (r string, exists bool) {
	v := m.original_url
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalURL returns the old "original_url" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldOriginalURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalURL: %w", err)
	}
	return oldValue.OriginalURL, nil
}

// ResetOriginalURL resets all changes to the "original_url" field.
func (m *MediaItemMutation) ResetOriginalURL() {
	m.original_url = nil
}

// SetLocalPath sets the "local_path" field.
func (m *MediaItemMutation) SetLocalPath(s string) {
	m.local_path = &s
}

// LocalPath returns the value of the "local_path" field in the mutation.
func (m *MediaItemMutation) LocalPath() (r string, exists bool) {
	v := m.local_path
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalPath returns the old "local_path" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldLocalPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalPath: %w", err)
	}
	return oldValue.LocalPath, nil
}

// ResetLocalPath resets all changes to the "local_path" field.
func (m *MediaItemMutation) ResetLocalPath() {
	m.local_path = nil
}

// SetRemoteURL sets the "remote_url" field.
func (m *MediaItemMutation) SetRemoteURL(s string) {
	m.remote_url = &s
}

// RemoteURL returns the value of the "remote_url" field in the mutation.
func (m *MediaItemMutation) RemoteURL() (r string, exists bool) {
	v := m.remote_url
	if v == nil {
		return
	}
	return *v, true
}

// OldRemoteURL returns the old "remote_url" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldRemoteURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemoteURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemoteURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemoteURL: %w", err)
	}
	return oldValue.RemoteURL, nil
}

// ResetRemoteURL resets all changes to the "remote_url" field.
func (m *MediaItemMutation) ResetRemoteURL() {
	m.remote_url = nil
}

// SetMediaType sets the "media_type" field.
func (m *MediaItemMutation) SetMediaType(mt mediaitem.MediaType) {
	m.media_type = &mt
}

// MediaType returns the value of the "media_type" field in the mutation.
func (m *MediaItemMutation) MediaType() (r mediaitem.MediaType, exists bool) {
	v := m.media_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaType returns the old "media_type" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldMediaType(ctx context.Context) (v mediaitem.MediaType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaType: %w", err)
	}
	return oldValue.MediaType, nil
}

// ResetMediaType resets all changes to the "media_type" field.
func (m *MediaItemMutation) ResetMediaType() {
	m.media_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *MediaItemMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *MediaItemMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *MediaItemMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *MediaItemMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *MediaItemMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetMimeType sets the "mime_type" field.
func (m *MediaItemMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *MediaItemMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *MediaItemMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetResolution sets the "resolution" field.
func (m *MediaItemMutation) SetResolution(s string) {
	m.resolution = &s
}

// Resolution returns the value of the "resolution" field in the mutation.
func (m *MediaItemMutation) Resolution() (r string, exists bool) {
	v := m.resolution
	if v == nil {
		return
	}
	return *v, true
}

// OldResolution returns the old "resolution" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldResolution(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolution: %w", err)
	}
	return oldValue.Resolution, nil
}

// ClearResolution clears the value of the "resolution" field.
func (m *MediaItemMutation) ClearResolution() {
	m.resolution = nil
	m.clearedFields[mediaitem.FieldResolution] = struct{}{}
}

// ResolutionCleared returns if the "resolution" field was cleared in this mutation.
func (m *MediaItemMutation) ResolutionCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldResolution]
	return ok
}

// ResetResolution resets all changes to the "resolution" field.
func (m *MediaItemMutation) ResetResolution() {
	m.resolution = nil
	delete(m.clearedFields, mediaitem.FieldResolution)
}

// SetDurationMs sets the "duration_ms" field.
func (m *MediaItemMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *MediaItemMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *MediaItemMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *MediaItemMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *MediaItemMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[mediaitem.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *MediaItemMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[mediaitem.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *MediaItemMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, mediaitem.FieldDurationMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *MediaItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MediaItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MediaItem entity.
// If the MediaItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MediaItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *MediaItemMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[mediaitem.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *MediaItemMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *MediaItemMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *MediaItemMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the MediaItemMutation builder.
func (m *MediaItemMutation) Where(ps ...predicate.MediaItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MediaItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MediaItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MediaItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MediaItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MediaItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MediaItem).
func (m *MediaItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MediaItemMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task != nil {
		fields = append(fields, mediaitem.FieldTaskID)
	}
	if m.original_url != nil {
		fields = append(fields, mediaitem.FieldOriginalURL)
	}
	if m.local_path != nil {
		fields = append(fields, mediaitem.FieldLocalPath)
	}
	if m.remote_url != nil {
		fields = append(fields, mediaitem.FieldRemoteURL)
	}
	if m.media_type != nil {
		fields = append(fields, mediaitem.FieldMediaType)
	}
	if m.file_size != nil {
		fields = append(fields, mediaitem.FieldFileSize)
	}
	if m.mime_type != nil {
		fields = append(fields, mediaitem.FieldMimeType)
	}
	if m.resolution != nil {
		fields = append(fields, mediaitem.FieldResolution)
	}
	if m.duration_ms != nil {
		fields = append(fields, mediaitem.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, mediaitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MediaItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mediaitem.FieldTaskID:
		return m.TaskID()
	case mediaitem.FieldOriginalURL:
		return m.OriginalURL()
	case mediaitem.FieldLocalPath:
		return m.LocalPath()
	case mediaitem.FieldRemoteURL:
		return m.RemoteURL()
	case mediaitem.FieldMediaType:
		return m.MediaType()
	case mediaitem.FieldFileSize:
		return m.FileSize()
	case mediaitem.FieldMimeType:
		return m.MimeType()
	case mediaitem.FieldResolution:
		return m.Resolution()
	case mediaitem.FieldDurationMs:
		return m.DurationMs()
	case mediaitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MediaItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mediaitem.FieldTaskID:
		return m.OldTaskID(ctx)
	case mediaitem.FieldOriginalURL:
		return m.OldOriginalURL(ctx)
	case mediaitem.FieldLocalPath:
		return m.OldLocalPath(ctx)
	case mediaitem.FieldRemoteURL:
		return m.OldRemoteURL(ctx)
	case mediaitem.FieldMediaType:
		return m.OldMediaType(ctx)
	case mediaitem.FieldFileSize:
		return m.OldFileSize(ctx)
	case mediaitem.FieldMimeType:
		return m.OldMimeType(ctx)
	case mediaitem.FieldResolution:
		return m.OldResolution(ctx)
	case mediaitem.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case mediaitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MediaItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mediaitem.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case mediaitem.FieldOriginalURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalURL(v)
		return nil
	case mediaitem.FieldLocalPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalPath(v)
		return nil
	case mediaitem.FieldRemoteURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemoteURL(v)
		return nil
	case mediaitem.FieldMediaType:
		v, ok := value.(mediaitem.MediaType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaType(v)
		return nil
	case mediaitem.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case mediaitem.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case mediaitem.FieldResolution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolution(v)
		return nil
	case mediaitem.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case mediaitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MediaItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MediaItemMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, mediaitem.FieldFileSize)
	}
	if m.addduration_ms != nil {
		fields = append(fields, mediaitem.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MediaItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mediaitem.FieldFileSize:
		return m.AddedFileSize()
	case mediaitem.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mediaitem.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case mediaitem.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown MediaItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MediaItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mediaitem.FieldResolution) {
		fields = append(fields, mediaitem.FieldResolution)
	}
	if m.FieldCleared(mediaitem.FieldDurationMs) {
		fields = append(fields, mediaitem.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MediaItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MediaItemMutation) ClearField(name string) error {
	switch name {
	case mediaitem.FieldResolution:
		m.ClearResolution()
		return nil
	case mediaitem.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown MediaItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MediaItemMutation) ResetField(name string) error {
	switch name {
	case mediaitem.FieldTaskID:
		m.ResetTaskID()
		return nil
	case mediaitem.FieldOriginalURL:
		m.ResetOriginalURL()
		return nil
	case mediaitem.FieldLocalPath:
		m.ResetLocalPath()
		return nil
	case mediaitem.FieldRemoteURL:
		m.ResetRemoteURL()
		return nil
	case mediaitem.FieldMediaType:
		m.ResetMediaType()
		return nil
	case mediaitem.FieldFileSize:
		m.ResetFileSize()
		return nil
	case mediaitem.FieldMimeType:
		m.ResetMimeType()
		return nil
	case mediaitem.FieldResolution:
		m.ResetResolution()
		return nil
	case mediaitem.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case mediaitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MediaItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MediaItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, mediaitem.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MediaItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mediaitem.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MediaItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MediaItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MediaItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, mediaitem.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MediaItemMutation) EdgeCleared(name string) bool {
	switch name {
	case mediaitem.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MediaItemMutation) ClearEdge(name string) error {
	switch name {
	case mediaitem.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown MediaItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MediaItemMutation) ResetEdge(name string) error {
	switch name {
	case mediaitem.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown MediaItem edge %s", name)
}

// ScriptContentMutation represents an operation that mutates the ScriptContent nodes in the graph.
type ScriptContentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	style                   *string
	titles                  *[]string
	appendtitles            []string
	word_count              *int
	addword_count           *int
	scene_count             *int
	addscene_count          *int
	estimated_duration_s    *int
	addestimated_duration_s *int
	scenes                  *[]map[string]interface{}
	appendscenes            []map[string]interface{}
	created_at              *time.Time
	clearedFields           map[string]struct{}
	sub_task                *string
	clearedsub_task         bool
	done                    bool
	oldValue                func(context.Context) (*ScriptContent, error)
	predicates              []predicate.ScriptContent
}

var _ ent.Mutation = (*ScriptContentMutation)(nil)

// scriptcontentOption allows management of the mutation configuration using functional options.
type scriptcontentOption func(*ScriptContentMutation)

// newScriptContentMutation creates new mutation for the ScriptContent entity.
func newScriptContentMutation(c config, op Op, opts ...scriptcontentOption) *ScriptContentMutation {
	m := &ScriptContentMutation{
		config:        c,
		op:            op,
		typ:           TypeScriptContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScriptContentID sets the ID field of the mutation.
func withScriptContentID(id string) scriptcontentOption {
	return func(m *ScriptContentMutation) {
		var (
			err   error
			once  sync.Once
			value *ScriptContent
		)
		m.oldValue = func(ctx context.Context) (*ScriptContent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScriptContent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScriptContent sets the old ScriptContent of the mutation.
func withScriptContent(node *ScriptContent) scriptcontentOption {
	return func(m *ScriptContentMutation) {
		m.oldValue = func(context.Context) (*ScriptContent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScriptContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScriptContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScriptContent entities.
func (m *ScriptContentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScriptContentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScriptContentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScriptContent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubTaskID sets the "sub_task_id" field.
func (m *ScriptContentMutation) SetSubTaskID(s string) {
	m.sub_task = &s
}

// SubTaskID returns the value of the "sub_task_id" field in the mutation.
func (m *ScriptContentMutation) SubTaskID() (r string, exists bool) {
	v := m.sub_task
	if v == nil {
		return
	}
	return *v, true
}

// OldSubTaskID returns the old "sub_task_id" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldSubTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubTaskID: %w", err)
	}
	return oldValue.SubTaskID, nil
}

// ResetSubTaskID resets all changes to the "sub_task_id" field.
func (m *ScriptContentMutation) ResetSubTaskID() {
	m.sub_task = nil
}

// SetStyle sets the "style" field.
func (m *ScriptContentMutation) SetStyle(s string) {
	m.style = &s
}

// Style returns the value of the "style" field in the mutation.
func (m *ScriptContentMutation) Style() (r string, exists bool) {
	v := m.style
	if v == nil {
		return
	}
	return *v, true
}

// OldStyle returns the old "style" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyle: %w", err)
	}
	return oldValue.Style, nil
}

// ResetStyle resets all changes to the "style" field.
func (m *ScriptContentMutation) ResetStyle() {
	m.style = nil
}

// SetTitles sets the "titles" field.
func (m *ScriptContentMutation) SetTitles(s []string) {
	m.titles = &s
	m.appendtitles = nil
}

// Titles returns the value of the "titles" field in the mutation.
func (m *ScriptContentMutation) Titles() (r []string, exists bool) {
	v := m.titles
	if v == nil {
		return
	}
	return *v, true
}

// OldTitles returns the old "titles" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldTitles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitles: %w", err)
	}
	return oldValue.Titles, nil
}

// AppendTitles adds s to the "titles" field.
func (m *ScriptContentMutation) AppendTitles(s []string) {
	m.appendtitles = append(m.appendtitles, s...)
}

// AppendedTitles returns the list of values that were appended to the "titles" field in this mutation.
func (m *ScriptContentMutation) AppendedTitles() ([]string, bool) {
	if len(m.appendtitles) == 0 {
		return nil, false
	}
	return m.appendtitles, true
}

// ResetTitles resets all changes to the "titles" field.
func (m *ScriptContentMutation) ResetTitles() {
	m.titles = nil
	m.appendtitles = nil
}

// SetWordCount sets the "word_count" field.
func (m *ScriptContentMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *ScriptContentMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *ScriptContentMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *ScriptContentMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *ScriptContentMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetSceneCount sets the "scene_count" field.
func (m *ScriptContentMutation) SetSceneCount(i int) {
	m.scene_count = &i
	m.addscene_count = nil
}

// SceneCount returns the value of the "scene_count" field in the mutation.
func (m *ScriptContentMutation) SceneCount() (r int, exists bool) {
	v := m.scene_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSceneCount returns the old "scene_count" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldSceneCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSceneCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSceneCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSceneCount: %w", err)
	}
	return oldValue.SceneCount, nil
}

// AddSceneCount adds i to the "scene_count" field.
func (m *ScriptContentMutation) AddSceneCount(i int) {
	if m.addscene_count != nil {
		*m.addscene_count += i
	} else {
		m.addscene_count = &i
	}
}

// AddedSceneCount returns the value that was added to the "scene_count" field in this mutation.
func (m *ScriptContentMutation) AddedSceneCount() (r int, exists bool) {
	v := m.addscene_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSceneCount resets all changes to the "scene_count" field.
func (m *ScriptContentMutation) ResetSceneCount() {
	m.scene_count = nil
	m.addscene_count = nil
}

// SetEstimatedDurationS sets the "estimated_duration_s" field.
func (m *ScriptContentMutation) SetEstimatedDurationS(i int) {
	m.estimated_duration_s = &i
	m.addestimated_duration_s = nil
}

// EstimatedDurationS returns the value of the "estimated_duration_s" field in the mutation.
func (m *ScriptContentMutation) EstimatedDurationS() (r int, exists bool) {
	v := m.estimated_duration_s
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedDurationS returns the old "estimated_duration_s" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldEstimatedDurationS(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedDurationS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedDurationS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedDurationS: %w", err)
	}
	return oldValue.EstimatedDurationS, nil
}

// AddEstimatedDurationS adds i to the "estimated_duration_s" field.
func (m *ScriptContentMutation) AddEstimatedDurationS(i int) {
	if m.addestimated_duration_s != nil {
		*m.addestimated_duration_s += i
	} else {
		m.addestimated_duration_s = &i
	}
}

// AddedEstimatedDurationS returns the value that was added to the "estimated_duration_s" field in this mutation.
func (m *ScriptContentMutation) AddedEstimatedDurationS() (r int, exists bool) {
	v := m.addestimated_duration_s
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedDurationS resets all changes to the "estimated_duration_s" field.
func (m *ScriptContentMutation) ResetEstimatedDurationS() {
	m.estimated_duration_s = nil
	m.addestimated_duration_s = nil
}

// SetScenes sets the "scenes" field.
func (m *ScriptContentMutation) SetScenes(value []map[string]interface{}) {
	m.scenes = &value
	m.appendscenes = nil
}

// Scenes returns the value of the "scenes" field in the mutation.
func (m *ScriptContentMutation) Scenes() (r []map[string]interface{}, exists bool) {
	v := m.scenes
	if v == nil {
		return
	}
	return *v, true
}

// OldScenes returns the old "scenes" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldScenes(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenes: %w", err)
	}
	return oldValue.Scenes, nil
}

// AppendScenes adds value to the "scenes" field.
func (m *ScriptContentMutation) AppendScenes(value []map[string]interface{}) {
	m.appendscenes = append(m.appendscenes, value...)
}

// AppendedScenes returns the list of values that were appended to the "scenes" field in this mutation.
func (m *ScriptContentMutation) AppendedScenes() ([]map[string]interface{}, bool) {
	if len(m.appendscenes) == 0 {
		return nil, false
	}
	return m.appendscenes, true
}

// ResetScenes resets all changes to the "scenes" field.
func (m *ScriptContentMutation) ResetScenes() {
	m.scenes = nil
	m.appendscenes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScriptContentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScriptContentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScriptContent entity.
// If the ScriptContent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScriptContentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScriptContentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSubTask clears the "sub_task" edge to the SubVideoTask entity.
func (m *ScriptContentMutation) ClearSubTask() {
	m.clearedsub_task = true
	m.clearedFields[scriptcontent.FieldSubTaskID] = struct{}{}
}

// SubTaskCleared reports if the "sub_task" edge to the SubVideoTask entity was cleared.
func (m *ScriptContentMutation) SubTaskCleared() bool {
	return m.clearedsub_task
}

// SubTaskIDs returns the "sub_task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubTaskID instead. It exists only for internal usage by the builders.
func (m *ScriptContentMutation) SubTaskIDs() (ids []string) {
	if id := m.sub_task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubTask resets all changes to the "sub_task" edge.
func (m *ScriptContentMutation) ResetSubTask() {
	m.sub_task = nil
	m.clearedsub_task = false
}

// Where appends a list predicates to the ScriptContentMutation builder.
func (m *ScriptContentMutation) Where(ps ...predicate.ScriptContent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScriptContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScriptContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScriptContent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScriptContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScriptContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScriptContent).
func (m *ScriptContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScriptContentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sub_task != nil {
		fields = append(fields, scriptcontent.FieldSubTaskID)
	}
	if m.style != nil {
		fields = append(fields, scriptcontent.FieldStyle)
	}
	if m.titles != nil {
		fields = append(fields, scriptcontent.FieldTitles)
	}
	if m.word_count != nil {
		fields = append(fields, scriptcontent.FieldWordCount)
	}
	if m.scene_count != nil {
		fields = append(fields, scriptcontent.FieldSceneCount)
	}
	if m.estimated_duration_s != nil {
		fields = append(fields, scriptcontent.FieldEstimatedDurationS)
	}
	if m.scenes != nil {
		fields = append(fields, scriptcontent.FieldScenes)
	}
	if m.created_at != nil {
		fields = append(fields, scriptcontent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScriptContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scriptcontent.FieldSubTaskID:
		return m.SubTaskID()
	case scriptcontent.FieldStyle:
		return m.Style()
	case scriptcontent.FieldTitles:
		return m.Titles()
	case scriptcontent.FieldWordCount:
		return m.WordCount()
	case scriptcontent.FieldSceneCount:
		return m.SceneCount()
	case scriptcontent.FieldEstimatedDurationS:
		return m.EstimatedDurationS()
	case scriptcontent.FieldScenes:
		return m.Scenes()
	case scriptcontent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScriptContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scriptcontent.FieldSubTaskID:
		return m.OldSubTaskID(ctx)
	case scriptcontent.FieldStyle:
		return m.OldStyle(ctx)
	case scriptcontent.FieldTitles:
		return m.OldTitles(ctx)
	case scriptcontent.FieldWordCount:
		return m.OldWordCount(ctx)
	case scriptcontent.FieldSceneCount:
		return m.OldSceneCount(ctx)
	case scriptcontent.FieldEstimatedDurationS:
		return m.OldEstimatedDurationS(ctx)
	case scriptcontent.FieldScenes:
		return m.OldScenes(ctx)
	case scriptcontent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScriptContent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScriptContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scriptcontent.FieldSubTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubTaskID(v)
		return nil
	case scriptcontent.FieldStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyle(v)
		return nil
	case scriptcontent.FieldTitles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitles(v)
		return nil
	case scriptcontent.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case scriptcontent.FieldSceneCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSceneCount(v)
		return nil
	case scriptcontent.FieldEstimatedDurationS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedDurationS(v)
		return nil
	case scriptcontent.FieldScenes:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenes(v)
		return nil
	case scriptcontent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScriptContent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScriptContentMutation) AddedFields() []string {
	var fields []string
	if m.addword_count != nil {
		fields = append(fields, scriptcontent.FieldWordCount)
	}
	if m.addscene_count != nil {
		fields = append(fields, scriptcontent.FieldSceneCount)
	}
	if m.addestimated_duration_s != nil {
		fields = append(fields, scriptcontent.FieldEstimatedDurationS)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScriptContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scriptcontent.FieldWordCount:
		return m.AddedWordCount()
	case scriptcontent.FieldSceneCount:
		return m.AddedSceneCount()
	case scriptcontent.FieldEstimatedDurationS:
		return m.AddedEstimatedDurationS()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScriptContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scriptcontent.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	case scriptcontent.FieldSceneCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSceneCount(v)
		return nil
	case scriptcontent.FieldEstimatedDurationS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedDurationS(v)
		return nil
	}
	return fmt.Errorf("unknown ScriptContent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScriptContentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScriptContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScriptContentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ScriptContent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScriptContentMutation) ResetField(name string) error {
	switch name {
	case scriptcontent.FieldSubTaskID:
		m.ResetSubTaskID()
		return nil
	case scriptcontent.FieldStyle:
		m.ResetStyle()
		return nil
	case scriptcontent.FieldTitles:
		m.ResetTitles()
		return nil
	case scriptcontent.FieldWordCount:
		m.ResetWordCount()
		return nil
	case scriptcontent.FieldSceneCount:
		m.ResetSceneCount()
		return nil
	case scriptcontent.FieldEstimatedDurationS:
		m.ResetEstimatedDurationS()
		return nil
	case scriptcontent.FieldScenes:
		m.ResetScenes()
		return nil
	case scriptcontent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScriptContent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScriptContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sub_task != nil {
		edges = append(edges, scriptcontent.EdgeSubTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScriptContentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scriptcontent.EdgeSubTask:
		if id := m.sub_task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScriptContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScriptContentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScriptContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsub_task {
		edges = append(edges, scriptcontent.EdgeSubTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScriptContentMutation) EdgeCleared(name string) bool {
	switch name {
	case scriptcontent.EdgeSubTask:
		return m.clearedsub_task
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScriptContentMutation) ClearEdge(name string) error {
	switch name {
	case scriptcontent.EdgeSubTask:
		m.ClearSubTask()
		return nil
	}
	return fmt.Errorf("unknown ScriptContent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScriptContentMutation) ResetEdge(name string) error {
	switch name {
	case scriptcontent.EdgeSubTask:
		m.ResetSubTask()
		return nil
	}
	return fmt.Errorf("unknown ScriptContent edge %s", name)
}

// SubVideoTaskMutation represents an operation that mutates the SubVideoTask nodes in the graph.
type SubVideoTaskMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	variant_index         *int
	addvariant_index      *int
	script_style          *string
	status                *subvideotask.Status
	progress              *int
	addprogress           *int
	script_id             *string
	script_payload        *map[string]interface{}
	external_merge_id     *string
	video_url             *string
	thumbnail_url         *string
	duration_ms           *int
	addduration_ms        *int
	error_message         *string
	submitted_at          *time.Time
	completed_at          *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	task                  *string
	clearedtask           bool
	script_content        *string
	clearedscript_content bool
	done                  bool
	oldValue              func(context.Context) (*SubVideoTask, error)
	predicates            []predicate.SubVideoTask
}

var _ ent.Mutation = (*SubVideoTaskMutation)(nil)

// subvideotaskOption allows management of the mutation configuration using functional options.
type subvideotaskOption func(*SubVideoTaskMutation)

// newSubVideoTaskMutation creates new mutation for the SubVideoTask entity.
func newSubVideoTaskMutation(c config, op Op, opts ...subvideotaskOption) *SubVideoTaskMutation {
	m := &SubVideoTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeSubVideoTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubVideoTaskID sets the ID field of the mutation.
func withSubVideoTaskID(id string) subvideotaskOption {
	return func(m *SubVideoTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *SubVideoTask
		)
		m.oldValue = func(ctx context.Context) (*SubVideoTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubVideoTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubVideoTask sets the old SubVideoTask of the mutation.
func withSubVideoTask(node *SubVideoTask) subvideotaskOption {
	return func(m *SubVideoTaskMutation) {
		m.oldValue = func(context.Context) (*SubVideoTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubVideoTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubVideoTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubVideoTask entities.
func (m *SubVideoTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubVideoTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubVideoTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubVideoTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *SubVideoTaskMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SubVideoTaskMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SubVideoTaskMutation) ResetTaskID() {
	m.task = nil
}

// SetVariantIndex sets the "variant_index" field.
func (m *SubVideoTaskMutation) SetVariantIndex(i int) {
	m.variant_index = &i
	m.addvariant_index = nil
}

// VariantIndex returns the value of the "variant_index" field in the mutation.
func (m *SubVideoTaskMutation) VariantIndex() (r int, exists bool) {
	v := m.variant_index
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantIndex returns the old "variant_index" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldVariantIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantIndex: %w", err)
	}
	return oldValue.VariantIndex, nil
}

// AddVariantIndex adds i to the "variant_index" field.
func (m *SubVideoTaskMutation) AddVariantIndex(i int) {
	if m.addvariant_index != nil {
		*m.addvariant_index += i
	} else {
		m.addvariant_index = &i
	}
}

// AddedVariantIndex returns the value that was added to the "variant_index" field in this mutation.
func (m *SubVideoTaskMutation) AddedVariantIndex() (r int, exists bool) {
	v := m.addvariant_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetVariantIndex resets all changes to the "variant_index" field.
func (m *SubVideoTaskMutation) ResetVariantIndex() {
	m.variant_index = nil
	m.addvariant_index = nil
}

// SetScriptStyle sets the "script_style" field.
func (m *SubVideoTaskMutation) SetScriptStyle(s string) {
	m.script_style = &s
}

// ScriptStyle returns the value of the "script_style" field in the mutation.
func (m *SubVideoTaskMutation) ScriptStyle() (r string, exists bool) {
	v := m.script_style
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptStyle returns the old "script_style" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldScriptStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptStyle: %w", err)
	}
	return oldValue.ScriptStyle, nil
}

// ResetScriptStyle resets all changes to the "script_style" field.
func (m *SubVideoTaskMutation) ResetScriptStyle() {
	m.script_style = nil
}

// SetStatus sets the "status" field.
func (m *SubVideoTaskMutation) SetStatus(s subvideotask.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubVideoTaskMutation) Status() (r subvideotask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldStatus(ctx context.Context) (v subvideotask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubVideoTaskMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *SubVideoTaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *SubVideoTaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *SubVideoTaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *SubVideoTaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *SubVideoTaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetScriptID sets the "script_id" field.
func (m *SubVideoTaskMutation) SetScriptID(s string) {
	m.script_id = &s
}

// ScriptID returns the value of the "script_id" field in the mutation.
func (m *SubVideoTaskMutation) ScriptID() (r string, exists bool) {
	v := m.script_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptID returns the old "script_id" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldScriptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptID: %w", err)
	}
	return oldValue.ScriptID, nil
}

// ClearScriptID clears the value of the "script_id" field.
func (m *SubVideoTaskMutation) ClearScriptID() {
	m.script_id = nil
	m.clearedFields[subvideotask.FieldScriptID] = struct{}{}
}

// ScriptIDCleared returns if the "script_id" field was cleared in this mutation.
func (m *SubVideoTaskMutation) ScriptIDCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldScriptID]
	return ok
}

// ResetScriptID resets all changes to the "script_id" field.
func (m *SubVideoTaskMutation) ResetScriptID() {
	m.script_id = nil
	delete(m.clearedFields, subvideotask.FieldScriptID)
}

// SetScriptPayload sets the "script_payload" field.
func (m *SubVideoTaskMutation) SetScriptPayload(value map[string]interface{}) {
	m.script_payload = &value
}

// ScriptPayload returns the value of the "script_payload" field in the mutation.
func (m *SubVideoTaskMutation) ScriptPayload() (r map[string]interface{}, exists bool) {
	v := m.script_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptPayload returns the old "script_payload" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldScriptPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptPayload: %w", err)
	}
	return oldValue.ScriptPayload, nil
}

// ClearScriptPayload clears the value of the "script_payload" field.
func (m *SubVideoTaskMutation) ClearScriptPayload() {
	m.script_payload = nil
	m.clearedFields[subvideotask.FieldScriptPayload] = struct{}{}
}

// ScriptPayloadCleared returns if the "script_payload" field was cleared in this mutation.
func (m *SubVideoTaskMutation) ScriptPayloadCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldScriptPayload]
	return ok
}

// ResetScriptPayload resets all changes to the "script_payload" field.
func (m *SubVideoTaskMutation) ResetScriptPayload() {
	m.script_payload = nil
	delete(m.clearedFields, subvideotask.FieldScriptPayload)
}

// SetExternalMergeID sets the "external_merge_id" field.
func (m *SubVideoTaskMutation) SetExternalMergeID(s string) {
	m.external_merge_id = &s
}

// ExternalMergeID returns the value of the "external_merge_id" field in the mutation.
func (m *SubVideoTaskMutation) ExternalMergeID() (r string, exists bool) {
	v := m.external_merge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalMergeID returns the old "external_merge_id" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldExternalMergeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalMergeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalMergeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalMergeID: %w", err)
	}
	return oldValue.ExternalMergeID, nil
}

// ClearExternalMergeID clears the value of the "external_merge_id" field.
func (m *SubVideoTaskMutation) ClearExternalMergeID() {
	m.external_merge_id = nil
	m.clearedFields[subvideotask.FieldExternalMergeID] = struct{}{}
}

// ExternalMergeIDCleared returns if the "external_merge_id" field was cleared in this mutation.
func (m *SubVideoTaskMutation) ExternalMergeIDCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldExternalMergeID]
	return ok
}

// ResetExternalMergeID resets all changes to the "external_merge_id" field.
func (m *SubVideoTaskMutation) ResetExternalMergeID() {
	m.external_merge_id = nil
	delete(m.clearedFields, subvideotask.FieldExternalMergeID)
}

// SetVideoURL sets the "video_url" field.
func (m *SubVideoTaskMutation) SetVideoURL(s string) {
	m.video_url = &s
}

// VideoURL returns the value of the "video_url" field in the mutation.
func (m *SubVideoTaskMutation) VideoURL() (r string, exists bool) {
	v := m.video_url
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoURL returns the old "video_url" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldVideoURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoURL: %w", err)
	}
	return oldValue.VideoURL, nil
}

// ClearVideoURL clears the value of the "video_url" field.
func (m *SubVideoTaskMutation) ClearVideoURL() {
	m.video_url = nil
	m.clearedFields[subvideotask.FieldVideoURL] = struct{}{}
}

// VideoURLCleared returns if the "video_url" field was cleared in this mutation.
func (m *SubVideoTaskMutation) VideoURLCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldVideoURL]
	return ok
}

// ResetVideoURL resets all changes to the "video_url" field.
func (m *SubVideoTaskMutation) ResetVideoURL() {
	m.video_url = nil
	delete(m.clearedFields, subvideotask.FieldVideoURL)
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (m *SubVideoTaskMutation) SetThumbnailURL(s string) {
	m.thumbnail_url = &s
}

// ThumbnailURL returns the value of the "thumbnail_url" field in the mutation.
func (m *SubVideoTaskMutation) ThumbnailURL() (r string, exists bool) {
	v := m.thumbnail_url
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailURL returns the old "thumbnail_url" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldThumbnailURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailURL: %w", err)
	}
	return oldValue.ThumbnailURL, nil
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (m *SubVideoTaskMutation) ClearThumbnailURL() {
	m.thumbnail_url = nil
	m.clearedFields[subvideotask.FieldThumbnailURL] = struct{}{}
}

// ThumbnailURLCleared returns if the "thumbnail_url" field was cleared in this mutation.
func (m *SubVideoTaskMutation) ThumbnailURLCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldThumbnailURL]
	return ok
}

// ResetThumbnailURL resets all changes to the "thumbnail_url" field.
func (m *SubVideoTaskMutation) ResetThumbnailURL() {
	m.thumbnail_url = nil
	delete(m.clearedFields, subvideotask.FieldThumbnailURL)
}

// SetDurationMs sets the "duration_ms" field.
func (m *SubVideoTaskMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *SubVideoTaskMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *SubVideoTaskMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *SubVideoTaskMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *SubVideoTaskMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[subvideotask.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *SubVideoTaskMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *SubVideoTaskMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, subvideotask.FieldDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *SubVideoTaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SubVideoTaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SubVideoTaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[subvideotask.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SubVideoTaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SubVideoTaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, subvideotask.FieldErrorMessage)
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *SubVideoTaskMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *SubVideoTaskMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldSubmittedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (m *SubVideoTaskMutation) ClearSubmittedAt() {
	m.submitted_at = nil
	m.clearedFields[subvideotask.FieldSubmittedAt] = struct{}{}
}

// SubmittedAtCleared returns if the "submitted_at" field was cleared in this mutation.
func (m *SubVideoTaskMutation) SubmittedAtCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldSubmittedAt]
	return ok
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *SubVideoTaskMutation) ResetSubmittedAt() {
	m.submitted_at = nil
	delete(m.clearedFields, subvideotask.FieldSubmittedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SubVideoTaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SubVideoTaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SubVideoTaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[subvideotask.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SubVideoTaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[subvideotask.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SubVideoTaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, subvideotask.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubVideoTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubVideoTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubVideoTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubVideoTaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubVideoTaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SubVideoTask entity.
// If the SubVideoTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubVideoTaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubVideoTaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *SubVideoTaskMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[subvideotask.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *SubVideoTaskMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SubVideoTaskMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SubVideoTaskMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// SetScriptContentID sets the "script_content" edge to the ScriptContent entity by id.
func (m *SubVideoTaskMutation) SetScriptContentID(id string) {
	m.script_content = &id
}

// ClearScriptContent clears the "script_content" edge to the ScriptContent entity.
func (m *SubVideoTaskMutation) ClearScriptContent() {
	m.clearedscript_content = true
}

// ScriptContentCleared reports if the "script_content" edge to the ScriptContent entity was cleared.
func (m *SubVideoTaskMutation) ScriptContentCleared() bool {
	return m.clearedscript_content
}

// ScriptContentID returns the "script_content" edge ID in the mutation.
func (m *SubVideoTaskMutation) ScriptContentID() (id string, exists bool) {
	if m.script_content != nil {
		return *m.script_content, true
	}
	return
}

// ScriptContentIDs returns the "script_content" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScriptContentID instead. It exists only for internal usage by the builders.
func (m *SubVideoTaskMutation) ScriptContentIDs() (ids []string) {
	if id := m.script_content; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetScriptContent resets all changes to the "script_content" edge.
func (m *SubVideoTaskMutation) ResetScriptContent() {
	m.script_content = nil
	m.clearedscript_content = false
}

// Where appends a list predicates to the SubVideoTaskMutation builder.
func (m *SubVideoTaskMutation) Where(ps ...predicate.SubVideoTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubVideoTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubVideoTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubVideoTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubVideoTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubVideoTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubVideoTask).
func (m *SubVideoTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubVideoTaskMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.task != nil {
		fields = append(fields, subvideotask.FieldTaskID)
	}
	if m.variant_index != nil {
		fields = append(fields, subvideotask.FieldVariantIndex)
	}
	if m.script_style != nil {
		fields = append(fields, subvideotask.FieldScriptStyle)
	}
	if m.status != nil {
		fields = append(fields, subvideotask.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, subvideotask.FieldProgress)
	}
	if m.script_id != nil {
		fields = append(fields, subvideotask.FieldScriptID)
	}
	if m.script_payload != nil {
		fields = append(fields, subvideotask.FieldScriptPayload)
	}
	if m.external_merge_id != nil {
		fields = append(fields, subvideotask.FieldExternalMergeID)
	}
	if m.video_url != nil {
		fields = append(fields, subvideotask.FieldVideoURL)
	}
	if m.thumbnail_url != nil {
		fields = append(fields, subvideotask.FieldThumbnailURL)
	}
	if m.duration_ms != nil {
		fields = append(fields, subvideotask.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, subvideotask.FieldErrorMessage)
	}
	if m.submitted_at != nil {
		fields = append(fields, subvideotask.FieldSubmittedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, subvideotask.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, subvideotask.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subvideotask.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubVideoTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subvideotask.FieldTaskID:
		return m.TaskID()
	case subvideotask.FieldVariantIndex:
		return m.VariantIndex()
	case subvideotask.FieldScriptStyle:
		return m.ScriptStyle()
	case subvideotask.FieldStatus:
		return m.Status()
	case subvideotask.FieldProgress:
		return m.Progress()
	case subvideotask.FieldScriptID:
		return m.ScriptID()
	case subvideotask.FieldScriptPayload:
		return m.ScriptPayload()
	case subvideotask.FieldExternalMergeID:
		return m.ExternalMergeID()
	case subvideotask.FieldVideoURL:
		return m.VideoURL()
	case subvideotask.FieldThumbnailURL:
		return m.ThumbnailURL()
	case subvideotask.FieldDurationMs:
		return m.DurationMs()
	case subvideotask.FieldErrorMessage:
		return m.ErrorMessage()
	case subvideotask.FieldSubmittedAt:
		return m.SubmittedAt()
	case subvideotask.FieldCompletedAt:
		return m.CompletedAt()
	case subvideotask.FieldCreatedAt:
		return m.CreatedAt()
	case subvideotask.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubVideoTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subvideotask.FieldTaskID:
		return m.OldTaskID(ctx)
	case subvideotask.FieldVariantIndex:
		return m.OldVariantIndex(ctx)
	case subvideotask.FieldScriptStyle:
		return m.OldScriptStyle(ctx)
	case subvideotask.FieldStatus:
		return m.OldStatus(ctx)
	case subvideotask.FieldProgress:
		return m.OldProgress(ctx)
	case subvideotask.FieldScriptID:
		return m.OldScriptID(ctx)
	case subvideotask.FieldScriptPayload:
		return m.OldScriptPayload(ctx)
	case subvideotask.FieldExternalMergeID:
		return m.OldExternalMergeID(ctx)
	case subvideotask.FieldVideoURL:
		return m.OldVideoURL(ctx)
	case subvideotask.FieldThumbnailURL:
		return m.OldThumbnailURL(ctx)
	case subvideotask.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case subvideotask.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case subvideotask.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case subvideotask.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case subvideotask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subvideotask.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubVideoTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubVideoTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subvideotask.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case subvideotask.FieldVariantIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantIndex(v)
		return nil
	case subvideotask.FieldScriptStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptStyle(v)
		return nil
	case subvideotask.FieldStatus:
		v, ok := value.(subvideotask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case subvideotask.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case subvideotask.FieldScriptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptID(v)
		return nil
	case subvideotask.FieldScriptPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptPayload(v)
		return nil
	case subvideotask.FieldExternalMergeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalMergeID(v)
		return nil
	case subvideotask.FieldVideoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoURL(v)
		return nil
	case subvideotask.FieldThumbnailURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailURL(v)
		return nil
	case subvideotask.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case subvideotask.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case subvideotask.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case subvideotask.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case subvideotask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subvideotask.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubVideoTaskMutation) AddedFields() []string {
	var fields []string
	if m.addvariant_index != nil {
		fields = append(fields, subvideotask.FieldVariantIndex)
	}
	if m.addprogress != nil {
		fields = append(fields, subvideotask.FieldProgress)
	}
	if m.addduration_ms != nil {
		fields = append(fields, subvideotask.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubVideoTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subvideotask.FieldVariantIndex:
		return m.AddedVariantIndex()
	case subvideotask.FieldProgress:
		return m.AddedProgress()
	case subvideotask.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubVideoTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subvideotask.FieldVariantIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVariantIndex(v)
		return nil
	case subvideotask.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case subvideotask.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubVideoTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subvideotask.FieldScriptID) {
		fields = append(fields, subvideotask.FieldScriptID)
	}
	if m.FieldCleared(subvideotask.FieldScriptPayload) {
		fields = append(fields, subvideotask.FieldScriptPayload)
	}
	if m.FieldCleared(subvideotask.FieldExternalMergeID) {
		fields = append(fields, subvideotask.FieldExternalMergeID)
	}
	if m.FieldCleared(subvideotask.FieldVideoURL) {
		fields = append(fields, subvideotask.FieldVideoURL)
	}
	if m.FieldCleared(subvideotask.FieldThumbnailURL) {
		fields = append(fields, subvideotask.FieldThumbnailURL)
	}
	if m.FieldCleared(subvideotask.FieldDurationMs) {
		fields = append(fields, subvideotask.FieldDurationMs)
	}
	if m.FieldCleared(subvideotask.FieldErrorMessage) {
		fields = append(fields, subvideotask.FieldErrorMessage)
	}
	if m.FieldCleared(subvideotask.FieldSubmittedAt) {
		fields = append(fields, subvideotask.FieldSubmittedAt)
	}
	if m.FieldCleared(subvideotask.FieldCompletedAt) {
		fields = append(fields, subvideotask.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubVideoTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubVideoTaskMutation) ClearField(name string) error {
	switch name {
	case subvideotask.FieldScriptID:
		m.ClearScriptID()
		return nil
	case subvideotask.FieldScriptPayload:
		m.ClearScriptPayload()
		return nil
	case subvideotask.FieldExternalMergeID:
		m.ClearExternalMergeID()
		return nil
	case subvideotask.FieldVideoURL:
		m.ClearVideoURL()
		return nil
	case subvideotask.FieldThumbnailURL:
		m.ClearThumbnailURL()
		return nil
	case subvideotask.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case subvideotask.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case subvideotask.FieldSubmittedAt:
		m.ClearSubmittedAt()
		return nil
	case subvideotask.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubVideoTaskMutation) ResetField(name string) error {
	switch name {
	case subvideotask.FieldTaskID:
		m.ResetTaskID()
		return nil
	case subvideotask.FieldVariantIndex:
		m.ResetVariantIndex()
		return nil
	case subvideotask.FieldScriptStyle:
		m.ResetScriptStyle()
		return nil
	case subvideotask.FieldStatus:
		m.ResetStatus()
		return nil
	case subvideotask.FieldProgress:
		m.ResetProgress()
		return nil
	case subvideotask.FieldScriptID:
		m.ResetScriptID()
		return nil
	case subvideotask.FieldScriptPayload:
		m.ResetScriptPayload()
		return nil
	case subvideotask.FieldExternalMergeID:
		m.ResetExternalMergeID()
		return nil
	case subvideotask.FieldVideoURL:
		m.ResetVideoURL()
		return nil
	case subvideotask.FieldThumbnailURL:
		m.ResetThumbnailURL()
		return nil
	case subvideotask.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case subvideotask.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case subvideotask.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case subvideotask.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case subvideotask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subvideotask.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubVideoTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.task != nil {
		edges = append(edges, subvideotask.EdgeTask)
	}
	if m.script_content != nil {
		edges = append(edges, subvideotask.EdgeScriptContent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubVideoTaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subvideotask.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case subvideotask.EdgeScriptContent:
		if id := m.script_content; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubVideoTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubVideoTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubVideoTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtask {
		edges = append(edges, subvideotask.EdgeTask)
	}
	if m.clearedscript_content {
		edges = append(edges, subvideotask.EdgeScriptContent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubVideoTaskMutation) EdgeCleared(name string) bool {
	switch name {
	case subvideotask.EdgeTask:
		return m.clearedtask
	case subvideotask.EdgeScriptContent:
		return m.clearedscript_content
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubVideoTaskMutation) ClearEdge(name string) error {
	switch name {
	case subvideotask.EdgeTask:
		m.ClearTask()
		return nil
	case subvideotask.EdgeScriptContent:
		m.ClearScriptContent()
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubVideoTaskMutation) ResetEdge(name string) error {
	switch name {
	case subvideotask.EdgeTask:
		m.ResetTask()
		return nil
	case subvideotask.EdgeScriptContent:
		m.ResetScriptContent()
		return nil
	}
	return fmt.Errorf("unknown SubVideoTask edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	title                *string
	description          *string
	mode                 *task.Mode
	script_style_default *string
	variant_count        *int
	addvariant_count     *int
	media_urls           *[]string
	appendmedia_urls     []string
	media_meta           *map[string]interface{}
	status               *task.Status
	progress             *int
	addprogress          *int
	current_stage        *task.CurrentStage
	stage_message        *string
	started_at           *time.Time
	completed_at         *time.Time
	video_url            *string
	thumbnail_url        *string
	video_duration_ms    *int
	addvideo_duration_ms *int
	error_message        *string
	workspace_dir        *string
	pod_id               *string
	lease_expires_at     *time.Time
	attempts             *int
	addattempts          *int
	created_at           *time.Time
	updated_at           *time.Time
	deleted_at           *time.Time
	clearedFields        map[string]struct{}
	sub_tasks            map[string]struct{}
	removedsub_tasks     map[string]struct{}
	clearedsub_tasks     bool
	media_items          map[string]struct{}
	removedmedia_items   map[string]struct{}
	clearedmedia_items   bool
	analyses             map[string]struct{}
	removedanalyses      map[string]struct{}
	clearedanalyses      bool
	done                 bool
	oldValue             func(context.Context) (*Task, error)
	predicates           []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *TaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TaskMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TaskMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[task.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TaskMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[task.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, task.FieldDescription)
}

// SetMode sets the "mode" field.
func (m *TaskMutation) SetMode(t task.Mode) {
	m.mode = &t
}

// Mode returns the value of the "mode" field in the mutation.
func (m *TaskMutation) Mode() (r task.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMode(ctx context.Context) (v task.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *TaskMutation) ResetMode() {
	m.mode = nil
}

// SetScriptStyleDefault sets the "script_style_default" field.
func (m *TaskMutation) SetScriptStyleDefault(s string) {
	m.script_style_default = &s
}

// ScriptStyleDefault returns the value of the "script_style_default" field in the mutation.
func (m *TaskMutation) ScriptStyleDefault() (r string, exists bool) {
	v := m.script_style_default
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptStyleDefault returns the old "script_style_default" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldScriptStyleDefault(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptStyleDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptStyleDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptStyleDefault: %w", err)
	}
	return oldValue.ScriptStyleDefault, nil
}

// ResetScriptStyleDefault resets all changes to the "script_style_default" field.
func (m *TaskMutation) ResetScriptStyleDefault() {
	m.script_style_default = nil
}

// SetVariantCount sets the "variant_count" field.
func (m *TaskMutation) SetVariantCount(i int) {
	m.variant_count = &i
	m.addvariant_count = nil
}

// VariantCount returns the value of the "variant_count" field in the mutation.
func (m *TaskMutation) VariantCount() (r int, exists bool) {
	v := m.variant_count
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantCount returns the old "variant_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldVariantCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantCount: %w", err)
	}
	return oldValue.VariantCount, nil
}

// AddVariantCount adds i to the "variant_count" field.
func (m *TaskMutation) AddVariantCount(i int) {
	if m.addvariant_count != nil {
		*m.addvariant_count += i
	} else {
		m.addvariant_count = &i
	}
}

// AddedVariantCount returns the value that was added to the "variant_count" field in this mutation.
func (m *TaskMutation) AddedVariantCount() (r int, exists bool) {
	v := m.addvariant_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetVariantCount resets all changes to the "variant_count" field.
func (m *TaskMutation) ResetVariantCount() {
	m.variant_count = nil
	m.addvariant_count = nil
}

// SetMediaUrls sets the "media_urls" field.
func (m *TaskMutation) SetMediaUrls(s []string) {
	m.media_urls = &s
	m.appendmedia_urls = nil
}

// MediaUrls returns the value of the "media_urls" field in the mutation.
func (m *TaskMutation) MediaUrls() (r []string, exists bool) {
	v := m.media_urls
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaUrls returns the old "media_urls" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMediaUrls(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaUrls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaUrls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaUrls: %w", err)
	}
	return oldValue.MediaUrls, nil
}

// AppendMediaUrls adds s to the "media_urls" field.
func (m *TaskMutation) AppendMediaUrls(s []string) {
	m.appendmedia_urls = append(m.appendmedia_urls, s...)
}

// AppendedMediaUrls returns the list of values that were appended to the "media_urls" field in this mutation.
func (m *TaskMutation) AppendedMediaUrls() ([]string, bool) {
	if len(m.appendmedia_urls) == 0 {
		return nil, false
	}
	return m.appendmedia_urls, true
}

// ResetMediaUrls resets all changes to the "media_urls" field.
func (m *TaskMutation) ResetMediaUrls() {
	m.media_urls = nil
	m.appendmedia_urls = nil
}

// SetMediaMeta sets the "media_meta" field.
func (m *TaskMutation) SetMediaMeta(value map[string]interface{}) {
	m.media_meta = &value
}

// MediaMeta returns the value of the "media_meta" field in the mutation.
func (m *TaskMutation) MediaMeta() (r map[string]interface{}, exists bool) {
	v := m.media_meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaMeta returns the old "media_meta" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldMediaMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaMeta: %w", err)
	}
	return oldValue.MediaMeta, nil
}

// ClearMediaMeta clears the value of the "media_meta" field.
func (m *TaskMutation) ClearMediaMeta() {
	m.media_meta = nil
	m.clearedFields[task.FieldMediaMeta] = struct{}{}
}

// MediaMetaCleared returns if the "media_meta" field was cleared in this mutation.
func (m *TaskMutation) MediaMetaCleared() bool {
	_, ok := m.clearedFields[task.FieldMediaMeta]
	return ok
}

// ResetMediaMeta resets all changes to the "media_meta" field.
func (m *TaskMutation) ResetMediaMeta() {
	m.media_meta = nil
	delete(m.clearedFields, task.FieldMediaMeta)
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetProgress sets the "progress" field.
func (m *TaskMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *TaskMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *TaskMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *TaskMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *TaskMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetCurrentStage sets the "current_stage" field.
func (m *TaskMutation) SetCurrentStage(ts task.CurrentStage) {
	m.current_stage = &ts
}

// CurrentStage returns the value of the "current_stage" field in the mutation.
func (m *TaskMutation) CurrentStage() (r task.CurrentStage, exists bool) {
	v := m.current_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStage returns the old "current_stage" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCurrentStage(ctx context.Context) (v *task.CurrentStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStage: %w", err)
	}
	return oldValue.CurrentStage, nil
}

// ClearCurrentStage clears the value of the "current_stage" field.
func (m *TaskMutation) ClearCurrentStage() {
	m.current_stage = nil
	m.clearedFields[task.FieldCurrentStage] = struct{}{}
}

// CurrentStageCleared returns if the "current_stage" field was cleared in this mutation.
func (m *TaskMutation) CurrentStageCleared() bool {
	_, ok := m.clearedFields[task.FieldCurrentStage]
	return ok
}

// ResetCurrentStage resets all changes to the "current_stage" field.
func (m *TaskMutation) ResetCurrentStage() {
	m.current_stage = nil
	delete(m.clearedFields, task.FieldCurrentStage)
}

// SetStageMessage sets the "stage_message" field.
func (m *TaskMutation) SetStageMessage(s string) {
	m.stage_message = &s
}

// StageMessage returns the value of the "stage_message" field in the mutation.
func (m *TaskMutation) StageMessage() (r string, exists bool) {
	v := m.stage_message
	if v == nil {
		return
	}
	return *v, true
}

// OldStageMessage returns the old "stage_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStageMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageMessage: %w", err)
	}
	return oldValue.StageMessage, nil
}

// ClearStageMessage clears the value of the "stage_message" field.
func (m *TaskMutation) ClearStageMessage() {
	m.stage_message = nil
	m.clearedFields[task.FieldStageMessage] = struct{}{}
}

// StageMessageCleared returns if the "stage_message" field was cleared in this mutation.
func (m *TaskMutation) StageMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldStageMessage]
	return ok
}

// ResetStageMessage resets all changes to the "stage_message" field.
func (m *TaskMutation) ResetStageMessage() {
	m.stage_message = nil
	delete(m.clearedFields, task.FieldStageMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetVideoURL sets the "video_url" field.
func (m *TaskMutation) SetVideoURL(s string) {
	m.video_url = &s
}

// VideoURL returns the value of the "video_url" field in the mutation.
func (m *TaskMutation) VideoURL() (r string, exists bool) {
	v := m.video_url
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoURL returns the old "video_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldVideoURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoURL: %w", err)
	}
	return oldValue.VideoURL, nil
}

// ClearVideoURL clears the value of the "video_url" field.
func (m *TaskMutation) ClearVideoURL() {
	m.video_url = nil
	m.clearedFields[task.FieldVideoURL] = struct{}{}
}

// VideoURLCleared returns if the "video_url" field was cleared in this mutation.
func (m *TaskMutation) VideoURLCleared() bool {
	_, ok := m.clearedFields[task.FieldVideoURL]
	return ok
}

// ResetVideoURL resets all changes to the "video_url" field.
func (m *TaskMutation) ResetVideoURL() {
	m.video_url = nil
	delete(m.clearedFields, task.FieldVideoURL)
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (m *TaskMutation) SetThumbnailURL(s string) {
	m.thumbnail_url = &s
}

// ThumbnailURL returns the value of the "thumbnail_url" field in the mutation.
func (m *TaskMutation) ThumbnailURL() (r string, exists bool) {
	v := m.thumbnail_url
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnailURL returns the old "thumbnail_url" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldThumbnailURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnailURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnailURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnailURL: %w", err)
	}
	return oldValue.ThumbnailURL, nil
}

// ClearThumbnailURL clears the value of the "thumbnail_url" field.
func (m *TaskMutation) ClearThumbnailURL() {
	m.thumbnail_url = nil
	m.clearedFields[task.FieldThumbnailURL] = struct{}{}
}

// ThumbnailURLCleared returns if the "thumbnail_url" field was cleared in this mutation.
func (m *TaskMutation) ThumbnailURLCleared() bool {
	_, ok := m.clearedFields[task.FieldThumbnailURL]
	return ok
}

// ResetThumbnailURL resets all changes to the "thumbnail_url" field.
func (m *TaskMutation) ResetThumbnailURL() {
	m.thumbnail_url = nil
	delete(m.clearedFields, task.FieldThumbnailURL)
}

// SetVideoDurationMs sets the "video_duration_ms" field.
func (m *TaskMutation) SetVideoDurationMs(i int) {
	m.video_duration_ms = &i
	m.addvideo_duration_ms = nil
}

// VideoDurationMs returns the value of the "video_duration_ms" field in the mutation.
func (m *TaskMutation) VideoDurationMs() (r int, exists bool) {
	v := m.video_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoDurationMs returns the old "video_duration_ms" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldVideoDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoDurationMs: %w", err)
	}
	return oldValue.VideoDurationMs, nil
}

// AddVideoDurationMs adds i to the "video_duration_ms" field.
func (m *TaskMutation) AddVideoDurationMs(i int) {
	if m.addvideo_duration_ms != nil {
		*m.addvideo_duration_ms += i
	} else {
		m.addvideo_duration_ms = &i
	}
}

// AddedVideoDurationMs returns the value that was added to the "video_duration_ms" field in this mutation.
func (m *TaskMutation) AddedVideoDurationMs() (r int, exists bool) {
	v := m.addvideo_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearVideoDurationMs clears the value of the "video_duration_ms" field.
func (m *TaskMutation) ClearVideoDurationMs() {
	m.video_duration_ms = nil
	m.addvideo_duration_ms = nil
	m.clearedFields[task.FieldVideoDurationMs] = struct{}{}
}

// VideoDurationMsCleared returns if the "video_duration_ms" field was cleared in this mutation.
func (m *TaskMutation) VideoDurationMsCleared() bool {
	_, ok := m.clearedFields[task.FieldVideoDurationMs]
	return ok
}

// ResetVideoDurationMs resets all changes to the "video_duration_ms" field.
func (m *TaskMutation) ResetVideoDurationMs() {
	m.video_duration_ms = nil
	m.addvideo_duration_ms = nil
	delete(m.clearedFields, task.FieldVideoDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetWorkspaceDir sets the "workspace_dir" field.
func (m *TaskMutation) SetWorkspaceDir(s string) {
	m.workspace_dir = &s
}

// WorkspaceDir returns the value of the "workspace_dir" field in the mutation.
func (m *TaskMutation) WorkspaceDir() (r string, exists bool) {
	v := m.workspace_dir
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceDir returns the old "workspace_dir" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWorkspaceDir(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceDir is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceDir requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceDir: %w", err)
	}
	return oldValue.WorkspaceDir, nil
}

// ResetWorkspaceDir resets all changes to the "workspace_dir" field.
func (m *TaskMutation) ResetWorkspaceDir() {
	m.workspace_dir = nil
}

// SetPodID sets the "pod_id" field.
func (m *TaskMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *TaskMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *TaskMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[task.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *TaskMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *TaskMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, task.FieldPodID)
}

// SetLeaseExpiresAt sets the "lease_expires_at" field.
func (m *TaskMutation) SetLeaseExpiresAt(t time.Time) {
	m.lease_expires_at = &t
}

// LeaseExpiresAt returns the value of the "lease_expires_at" field in the mutation.
func (m *TaskMutation) LeaseExpiresAt() (r time.Time, exists bool) {
	v := m.lease_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseExpiresAt returns the old "lease_expires_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLeaseExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseExpiresAt: %w", err)
	}
	return oldValue.LeaseExpiresAt, nil
}

// ClearLeaseExpiresAt clears the value of the "lease_expires_at" field.
func (m *TaskMutation) ClearLeaseExpiresAt() {
	m.lease_expires_at = nil
	m.clearedFields[task.FieldLeaseExpiresAt] = struct{}{}
}

// LeaseExpiresAtCleared returns if the "lease_expires_at" field was cleared in this mutation.
func (m *TaskMutation) LeaseExpiresAtCleared() bool {
	_, ok := m.clearedFields[task.FieldLeaseExpiresAt]
	return ok
}

// ResetLeaseExpiresAt resets all changes to the "lease_expires_at" field.
func (m *TaskMutation) ResetLeaseExpiresAt() {
	m.lease_expires_at = nil
	delete(m.clearedFields, task.FieldLeaseExpiresAt)
}

// SetAttempts sets the "attempts" field.
func (m *TaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *TaskMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *TaskMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *TaskMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[task.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *TaskMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *TaskMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, task.FieldDeletedAt)
}

// AddSubTaskIDs adds the "sub_tasks" edge to the SubVideoTask entity by ids.
func (m *TaskMutation) AddSubTaskIDs(ids ...string) {
	if m.sub_tasks == nil {
		m.sub_tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.sub_tasks[ids[i]] = struct{}{}
	}
}

// ClearSubTasks clears the "sub_tasks" edge to the SubVideoTask entity.
func (m *TaskMutation) ClearSubTasks() {
	m.clearedsub_tasks = true
}

// SubTasksCleared reports if the "sub_tasks" edge to the SubVideoTask entity was cleared.
func (m *TaskMutation) SubTasksCleared() bool {
	return m.clearedsub_tasks
}

// RemoveSubTaskIDs removes the "sub_tasks" edge to the SubVideoTask entity by IDs.
func (m *TaskMutation) RemoveSubTaskIDs(ids ...string) {
	if m.removedsub_tasks == nil {
		m.removedsub_tasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sub_tasks, ids[i])
		m.removedsub_tasks[ids[i]] = struct{}{}
	}
}

// RemovedSubTasks returns the removed IDs of the "sub_tasks" edge to the SubVideoTask entity.
func (m *TaskMutation) RemovedSubTasksIDs() (ids []string) {
	for id := range m.removedsub_tasks {
		ids = append(ids, id)
	}
	return
}

// SubTasksIDs returns the "sub_tasks" edge IDs in the mutation.
func (m *TaskMutation) SubTasksIDs() (ids []string) {
	for id := range m.sub_tasks {
		ids = append(ids, id)
	}
	return
}

// ResetSubTasks resets all changes to the "sub_tasks" edge.
func (m *TaskMutation) ResetSubTasks() {
	m.sub_tasks = nil
	m.clearedsub_tasks = false
	m.removedsub_tasks = nil
}

// AddMediaItemIDs adds the "media_items" edge to the MediaItem entity by ids.
func (m *TaskMutation) AddMediaItemIDs(ids ...string) {
	if m.media_items == nil {
		m.media_items = make(map[string]struct{})
	}
	for i := range ids {
		m.media_items[ids[i]] = struct{}{}
	}
}

// ClearMediaItems clears the "media_items" edge to the MediaItem entity.
func (m *TaskMutation) ClearMediaItems() {
	m.clearedmedia_items = true
}

// MediaItemsCleared reports if the "media_items" edge to the MediaItem entity was cleared.
func (m *TaskMutation) MediaItemsCleared() bool {
	return m.clearedmedia_items
}

// RemoveMediaItemIDs removes the "media_items" edge to the MediaItem entity by IDs.
func (m *TaskMutation) RemoveMediaItemIDs(ids ...string) {
	if m.removedmedia_items == nil {
		m.removedmedia_items = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.media_items, ids[i])
		m.removedmedia_items[ids[i]] = struct{}{}
	}
}

// RemovedMediaItems returns the removed IDs of the "media_items" edge to the MediaItem entity.
func (m *TaskMutation) RemovedMediaItemsIDs() (ids []string) {
	for id := range m.removedmedia_items {
		ids = append(ids, id)
	}
	return
}

// MediaItemsIDs returns the "media_items" edge IDs in the mutation.
func (m *TaskMutation) MediaItemsIDs() (ids []string) {
	for id := range m.media_items {
		ids = append(ids, id)
	}
	return
}

// ResetMediaItems resets all changes to the "media_items" edge.
func (m *TaskMutation) ResetMediaItems() {
	m.media_items = nil
	m.clearedmedia_items = false
	m.removedmedia_items = nil
}

// AddAnalysisIDs adds the "analyses" edge to the MaterialAnalysis entity by ids.
func (m *TaskMutation) AddAnalysisIDs(ids ...string) {
	if m.analyses == nil {
		m.analyses = make(map[string]struct{})
	}
	for i := range ids {
		m.analyses[ids[i]] = struct{}{}
	}
}

// ClearAnalyses clears the "analyses" edge to the MaterialAnalysis entity.
func (m *TaskMutation) ClearAnalyses() {
	m.clearedanalyses = true
}

// AnalysesCleared reports if the "analyses" edge to the MaterialAnalysis entity was cleared.
func (m *TaskMutation) AnalysesCleared() bool {
	return m.clearedanalyses
}

// RemoveAnalysisIDs removes the "analyses" edge to the MaterialAnalysis entity by IDs.
func (m *TaskMutation) RemoveAnalysisIDs(ids ...string) {
	if m.removedanalyses == nil {
		m.removedanalyses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.analyses, ids[i])
		m.removedanalyses[ids[i]] = struct{}{}
	}
}

// RemovedAnalyses returns the removed IDs of the "analyses" edge to the MaterialAnalysis entity.
func (m *TaskMutation) RemovedAnalysesIDs() (ids []string) {
	for id := range m.removedanalyses {
		ids = append(ids, id)
	}
	return
}

// AnalysesIDs returns the "analyses" edge IDs in the mutation.
func (m *TaskMutation) AnalysesIDs() (ids []string) {
	for id := range m.analyses {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyses resets all changes to the "analyses" edge.
func (m *TaskMutation) ResetAnalyses() {
	m.analyses = nil
	m.clearedanalyses = false
	m.removedanalyses = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.title != nil {
		fields = append(fields, task.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.mode != nil {
		fields = append(fields, task.FieldMode)
	}
	if m.script_style_default != nil {
		fields = append(fields, task.FieldScriptStyleDefault)
	}
	if m.variant_count != nil {
		fields = append(fields, task.FieldVariantCount)
	}
	if m.media_urls != nil {
		fields = append(fields, task.FieldMediaUrls)
	}
	if m.media_meta != nil {
		fields = append(fields, task.FieldMediaMeta)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.progress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.current_stage != nil {
		fields = append(fields, task.FieldCurrentStage)
	}
	if m.stage_message != nil {
		fields = append(fields, task.FieldStageMessage)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.video_url != nil {
		fields = append(fields, task.FieldVideoURL)
	}
	if m.thumbnail_url != nil {
		fields = append(fields, task.FieldThumbnailURL)
	}
	if m.video_duration_ms != nil {
		fields = append(fields, task.FieldVideoDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.workspace_dir != nil {
		fields = append(fields, task.FieldWorkspaceDir)
	}
	if m.pod_id != nil {
		fields = append(fields, task.FieldPodID)
	}
	if m.lease_expires_at != nil {
		fields = append(fields, task.FieldLeaseExpiresAt)
	}
	if m.attempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, task.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTitle:
		return m.Title()
	case task.FieldDescription:
		return m.Description()
	case task.FieldMode:
		return m.Mode()
	case task.FieldScriptStyleDefault:
		return m.ScriptStyleDefault()
	case task.FieldVariantCount:
		return m.VariantCount()
	case task.FieldMediaUrls:
		return m.MediaUrls()
	case task.FieldMediaMeta:
		return m.MediaMeta()
	case task.FieldStatus:
		return m.Status()
	case task.FieldProgress:
		return m.Progress()
	case task.FieldCurrentStage:
		return m.CurrentStage()
	case task.FieldStageMessage:
		return m.StageMessage()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldVideoURL:
		return m.VideoURL()
	case task.FieldThumbnailURL:
		return m.ThumbnailURL()
	case task.FieldVideoDurationMs:
		return m.VideoDurationMs()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldWorkspaceDir:
		return m.WorkspaceDir()
	case task.FieldPodID:
		return m.PodID()
	case task.FieldLeaseExpiresAt:
		return m.LeaseExpiresAt()
	case task.FieldAttempts:
		return m.Attempts()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTitle:
		return m.OldTitle(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldMode:
		return m.OldMode(ctx)
	case task.FieldScriptStyleDefault:
		return m.OldScriptStyleDefault(ctx)
	case task.FieldVariantCount:
		return m.OldVariantCount(ctx)
	case task.FieldMediaUrls:
		return m.OldMediaUrls(ctx)
	case task.FieldMediaMeta:
		return m.OldMediaMeta(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldProgress:
		return m.OldProgress(ctx)
	case task.FieldCurrentStage:
		return m.OldCurrentStage(ctx)
	case task.FieldStageMessage:
		return m.OldStageMessage(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldVideoURL:
		return m.OldVideoURL(ctx)
	case task.FieldThumbnailURL:
		return m.OldThumbnailURL(ctx)
	case task.FieldVideoDurationMs:
		return m.OldVideoDurationMs(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldWorkspaceDir:
		return m.OldWorkspaceDir(ctx)
	case task.FieldPodID:
		return m.OldPodID(ctx)
	case task.FieldLeaseExpiresAt:
		return m.OldLeaseExpiresAt(ctx)
	case task.FieldAttempts:
		return m.OldAttempts(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldMode:
		v, ok := value.(task.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case task.FieldScriptStyleDefault:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptStyleDefault(v)
		return nil
	case task.FieldVariantCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantCount(v)
		return nil
	case task.FieldMediaUrls:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaUrls(v)
		return nil
	case task.FieldMediaMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaMeta(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case task.FieldCurrentStage:
		v, ok := value.(task.CurrentStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStage(v)
		return nil
	case task.FieldStageMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageMessage(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldVideoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoURL(v)
		return nil
	case task.FieldThumbnailURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnailURL(v)
		return nil
	case task.FieldVideoDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoDurationMs(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldWorkspaceDir:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceDir(v)
		return nil
	case task.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case task.FieldLeaseExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseExpiresAt(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addvariant_count != nil {
		fields = append(fields, task.FieldVariantCount)
	}
	if m.addprogress != nil {
		fields = append(fields, task.FieldProgress)
	}
	if m.addvideo_duration_ms != nil {
		fields = append(fields, task.FieldVideoDurationMs)
	}
	if m.addattempts != nil {
		fields = append(fields, task.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldVariantCount:
		return m.AddedVariantCount()
	case task.FieldProgress:
		return m.AddedProgress()
	case task.FieldVideoDurationMs:
		return m.AddedVideoDurationMs()
	case task.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldVariantCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVariantCount(v)
		return nil
	case task.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case task.FieldVideoDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVideoDurationMs(v)
		return nil
	case task.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldDescription) {
		fields = append(fields, task.FieldDescription)
	}
	if m.FieldCleared(task.FieldMediaMeta) {
		fields = append(fields, task.FieldMediaMeta)
	}
	if m.FieldCleared(task.FieldCurrentStage) {
		fields = append(fields, task.FieldCurrentStage)
	}
	if m.FieldCleared(task.FieldStageMessage) {
		fields = append(fields, task.FieldStageMessage)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldVideoURL) {
		fields = append(fields, task.FieldVideoURL)
	}
	if m.FieldCleared(task.FieldThumbnailURL) {
		fields = append(fields, task.FieldThumbnailURL)
	}
	if m.FieldCleared(task.FieldVideoDurationMs) {
		fields = append(fields, task.FieldVideoDurationMs)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldPodID) {
		fields = append(fields, task.FieldPodID)
	}
	if m.FieldCleared(task.FieldLeaseExpiresAt) {
		fields = append(fields, task.FieldLeaseExpiresAt)
	}
	if m.FieldCleared(task.FieldDeletedAt) {
		fields = append(fields, task.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldDescription:
		m.ClearDescription()
		return nil
	case task.FieldMediaMeta:
		m.ClearMediaMeta()
		return nil
	case task.FieldCurrentStage:
		m.ClearCurrentStage()
		return nil
	case task.FieldStageMessage:
		m.ClearStageMessage()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldVideoURL:
		m.ClearVideoURL()
		return nil
	case task.FieldThumbnailURL:
		m.ClearThumbnailURL()
		return nil
	case task.FieldVideoDurationMs:
		m.ClearVideoDurationMs()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldPodID:
		m.ClearPodID()
		return nil
	case task.FieldLeaseExpiresAt:
		m.ClearLeaseExpiresAt()
		return nil
	case task.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTitle:
		m.ResetTitle()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldMode:
		m.ResetMode()
		return nil
	case task.FieldScriptStyleDefault:
		m.ResetScriptStyleDefault()
		return nil
	case task.FieldVariantCount:
		m.ResetVariantCount()
		return nil
	case task.FieldMediaUrls:
		m.ResetMediaUrls()
		return nil
	case task.FieldMediaMeta:
		m.ResetMediaMeta()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldProgress:
		m.ResetProgress()
		return nil
	case task.FieldCurrentStage:
		m.ResetCurrentStage()
		return nil
	case task.FieldStageMessage:
		m.ResetStageMessage()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldVideoURL:
		m.ResetVideoURL()
		return nil
	case task.FieldThumbnailURL:
		m.ResetThumbnailURL()
		return nil
	case task.FieldVideoDurationMs:
		m.ResetVideoDurationMs()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldWorkspaceDir:
		m.ResetWorkspaceDir()
		return nil
	case task.FieldPodID:
		m.ResetPodID()
		return nil
	case task.FieldLeaseExpiresAt:
		m.ResetLeaseExpiresAt()
		return nil
	case task.FieldAttempts:
		m.ResetAttempts()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.sub_tasks != nil {
		edges = append(edges, task.EdgeSubTasks)
	}
	if m.media_items != nil {
		edges = append(edges, task.EdgeMediaItems)
	}
	if m.analyses != nil {
		edges = append(edges, task.EdgeAnalyses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSubTasks:
		ids := make([]ent.Value, 0, len(m.sub_tasks))
		for id := range m.sub_tasks {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeMediaItems:
		ids := make([]ent.Value, 0, len(m.media_items))
		for id := range m.media_items {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.analyses))
		for id := range m.analyses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsub_tasks != nil {
		edges = append(edges, task.EdgeSubTasks)
	}
	if m.removedmedia_items != nil {
		edges = append(edges, task.EdgeMediaItems)
	}
	if m.removedanalyses != nil {
		edges = append(edges, task.EdgeAnalyses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSubTasks:
		ids := make([]ent.Value, 0, len(m.removedsub_tasks))
		for id := range m.removedsub_tasks {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeMediaItems:
		ids := make([]ent.Value, 0, len(m.removedmedia_items))
		for id := range m.removedmedia_items {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.removedanalyses))
		for id := range m.removedanalyses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsub_tasks {
		edges = append(edges, task.EdgeSubTasks)
	}
	if m.clearedmedia_items {
		edges = append(edges, task.EdgeMediaItems)
	}
	if m.clearedanalyses {
		edges = append(edges, task.EdgeAnalyses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeSubTasks:
		return m.clearedsub_tasks
	case task.EdgeMediaItems:
		return m.clearedmedia_items
	case task.EdgeAnalyses:
		return m.clearedanalyses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeSubTasks:
		m.ResetSubTasks()
		return nil
	case task.EdgeMediaItems:
		m.ResetMediaItems()
		return nil
	case task.EdgeAnalyses:
		m.ResetAnalyses()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
