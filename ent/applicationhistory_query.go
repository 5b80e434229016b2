// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"
	"staffhub/ent/applicationhistory"
	"staffhub/ent/predicate"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ApplicationHistoryQuery is the builder for querying ApplicationHistory entities.
type ApplicationHistoryQuery struct {
	config
	ctx        *QueryContext
	order      []applicationhistory.OrderOption
	inters     []Interceptor
	predicates []predicate.ApplicationHistory
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ApplicationHistoryQuery builder.
func (ahq *ApplicationHistoryQuery) Where(ps ...predicate.ApplicationHistory) *ApplicationHistoryQuery {
	ahq.predicates = append(ahq.predicates, ps...)
	return ahq
}

// Limit the number of records to be returned by this query.
func (ahq *ApplicationHistoryQuery) Limit(limit int) *ApplicationHistoryQuery {
	ahq.ctx.Limit = &limit
	return ahq
}

// Offset to start from.
func (ahq *ApplicationHistoryQuery) Offset(offset int) *ApplicationHistoryQuery {
	ahq.ctx.Offset = &offset
	return ahq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ahq *ApplicationHistoryQuery) Unique(unique bool) *ApplicationHistoryQuery {
	ahq.ctx.Unique = &unique
	return ahq
}

// Order specifies how the records should be ordered.
func (ahq *ApplicationHistoryQuery) Order(o ...applicationhistory.OrderOption) *ApplicationHistoryQuery {
	ahq.order = append(ahq.order, o...)
	return ahq
}

// First returns the first ApplicationHistory entity from the query.
// Returns a *NotFoundError when no ApplicationHistory was found.
func (ahq *ApplicationHistoryQuery) First(ctx context.Context) (*ApplicationHistory, error) {
	nodes, err := ahq.Limit(1).All(setContextOp(ctx, ahq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{applicationhistory.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ahq *ApplicationHistoryQuery) FirstX(ctx context.Context) *ApplicationHistory {
	node, err := ahq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ApplicationHistory ID from the query.
// Returns a *NotFoundError when no ApplicationHistory ID was found.
func (ahq *ApplicationHistoryQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ahq.Limit(1).IDs(setContextOp(ctx, ahq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{applicationhistory.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ahq *ApplicationHistoryQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := ahq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ApplicationHistory entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ApplicationHistory entity is found.
// Returns a *NotFoundError when no ApplicationHistory entities are found.
func (ahq *ApplicationHistoryQuery) Only(ctx context.Context) (*ApplicationHistory, error) {
	nodes, err := ahq.Limit(2).All(setContextOp(ctx, ahq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{applicationhistory.Label}
	default:
		return nil, &NotSingularError{applicationhistory.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ahq *ApplicationHistoryQuery) OnlyX(ctx context.Context) *ApplicationHistory {
	node, err := ahq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ApplicationHistory ID in the query.
// Returns a *NotSingularError when more than one ApplicationHistory ID is found.
// Returns a *NotFoundError when no entities are found.
func (ahq *ApplicationHistoryQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = ahq.Limit(2).IDs(setContextOp(ctx, ahq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{applicationhistory.Label}
	default:
		err = &NotSingularError{applicationhistory.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ahq *ApplicationHistoryQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := ahq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ApplicationHistories.
func (ahq *ApplicationHistoryQuery) All(ctx context.Context) ([]*ApplicationHistory, error) {
	ctx = setContextOp(ctx, ahq.ctx, ent.OpQueryAll)
	if err := ahq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ApplicationHistory, *ApplicationHistoryQuery]()
	return withInterceptors[[]*ApplicationHistory](ctx, ahq, qr, ahq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ahq *ApplicationHistoryQuery) AllX(ctx context.Context) []*ApplicationHistory {
	nodes, err := ahq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ApplicationHistory IDs.
func (ahq *ApplicationHistoryQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if ahq.ctx.Unique == nil && ahq.path != nil {
		ahq.Unique(true)
	}
	ctx = setContextOp(ctx, ahq.ctx, ent.OpQueryIDs)
	if err = ahq.Select(applicationhistory.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ahq *ApplicationHistoryQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := ahq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ahq *ApplicationHistoryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ahq.ctx, ent.OpQueryCount)
	if err := ahq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ahq, querierCount[*ApplicationHistoryQuery](), ahq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ahq *ApplicationHistoryQuery) CountX(ctx context.Context) int {
	count, err := ahq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ahq *ApplicationHistoryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ahq.ctx, ent.OpQueryExist)
	switch _, err := ahq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ahq *ApplicationHistoryQuery) ExistX(ctx context.Context) bool {
	exist, err := ahq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ApplicationHistoryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ahq *ApplicationHistoryQuery) Clone() *ApplicationHistoryQuery {
	if ahq == nil {
		return nil
	}
	return &ApplicationHistoryQuery{
		config:     ahq.config,
		ctx:        ahq.ctx.Clone(),
		order:      append([]applicationhistory.OrderOption{}, ahq.order...),
		inters:     append([]Interceptor{}, ahq.inters...),
		predicates: append([]predicate.ApplicationHistory{}, ahq.predicates...),
		// clone intermediate query.
		sql:  ahq.sql.Clone(),
		path: ahq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ApplicationID uuid.UUID `json:"application_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ApplicationHistory.Query().
//		GroupBy(applicationhistory.FieldApplicationID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ahq *ApplicationHistoryQuery) GroupBy(field string, fields ...string) *ApplicationHistoryGroupBy {
	ahq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ApplicationHistoryGroupBy{build: ahq}
	grbuild.flds = &ahq.ctx.Fields
	grbuild.label = applicationhistory.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ApplicationID uuid.UUID `json:"application_id,omitempty"`
//	}
//
//	client.ApplicationHistory.Query().
//		Select(applicationhistory.FieldApplicationID).
//		Scan(ctx, &v)
func (ahq *ApplicationHistoryQuery) Select(fields ...string) *ApplicationHistorySelect {
	ahq.ctx.Fields = append(ahq.ctx.Fields, fields...)
	sbuild := &ApplicationHistorySelect{ApplicationHistoryQuery: ahq}
	sbuild.label = applicationhistory.Label
	sbuild.flds, sbuild.scan = &ahq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ApplicationHistorySelect configured with the given aggregations.
func (ahq *ApplicationHistoryQuery) Aggregate(fns ...AggregateFunc) *ApplicationHistorySelect {
	return ahq.Select().Aggregate(fns...)
}

func (ahq *ApplicationHistoryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ahq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ahq); err != nil {
				return err
			}
		}
	}
	for _, f := range ahq.ctx.Fields {
		if !applicationhistory.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ahq.path != nil {
		prev, err := ahq.path(ctx)
		if err != nil {
			return err
		}
		ahq.sql = prev
	}
	return nil
}

func (ahq *ApplicationHistoryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ApplicationHistory, error) {
	var (
		nodes = []*ApplicationHistory{}
		_spec = ahq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ApplicationHistory).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ApplicationHistory{config: ahq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ahq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ahq *ApplicationHistoryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ahq.querySpec()
	_spec.Node.Columns = ahq.ctx.Fields
	if len(ahq.ctx.Fields) > 0 {
		_spec.Unique = ahq.ctx.Unique != nil && *ahq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ahq.driver, _spec)
}

func (ahq *ApplicationHistoryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(applicationhistory.Table, applicationhistory.Columns, sqlgraph.NewFieldSpec(applicationhistory.FieldID, field.TypeUUID))
	_spec.From = ahq.sql
	if unique := ahq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ahq.path != nil {
		_spec.Unique = true
	}
	if fields := ahq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicationhistory.FieldID)
		for i := range fields {
			if fields[i] != applicationhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ahq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ahq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ahq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ahq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ahq *ApplicationHistoryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ahq.driver.Dialect())
	t1 := builder.Table(applicationhistory.Table)
	columns := ahq.ctx.Fields
	if len(columns) == 0 {
		columns = applicationhistory.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ahq.sql != nil {
		selector = ahq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ahq.ctx.Unique != nil && *ahq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ahq.predicates {
		p(selector)
	}
	for _, p := range ahq.order {
		p(selector)
	}
	if offset := ahq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ahq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ApplicationHistoryGroupBy is the group-by builder for ApplicationHistory entities.
type ApplicationHistoryGroupBy struct {
	selector
	build *ApplicationHistoryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ahgb *ApplicationHistoryGroupBy) Aggregate(fns ...AggregateFunc) *ApplicationHistoryGroupBy {
	ahgb.fns = append(ahgb.fns, fns...)
	return ahgb
}

// Scan applies the selector query and scans the result into the given value.
func (ahgb *ApplicationHistoryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ahgb.build.ctx, ent.OpQueryGroupBy)
	if err := ahgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ApplicationHistoryQuery, *ApplicationHistoryGroupBy](ctx, ahgb.build, ahgb, ahgb.build.inters, v)
}

func (ahgb *ApplicationHistoryGroupBy) sqlScan(ctx context.Context, root *ApplicationHistoryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ahgb.fns))
	for _, fn := range ahgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ahgb.flds)+len(ahgb.fns))
		for _, f := range *ahgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ahgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ahgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ApplicationHistorySelect is the builder for selecting fields of ApplicationHistory entities.
type ApplicationHistorySelect struct {
	*ApplicationHistoryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ahs *ApplicationHistorySelect) Aggregate(fns ...AggregateFunc) *ApplicationHistorySelect {
	ahs.fns = append(ahs.fns, fns...)
	return ahs
}

// Scan applies the selector query and scans the result into the given value.
func (ahs *ApplicationHistorySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ahs.ctx, ent.OpQuerySelect)
	if err := ahs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ApplicationHistoryQuery, *ApplicationHistorySelect](ctx, ahs.ApplicationHistoryQuery, ahs, ahs.inters, v)
}

func (ahs *ApplicationHistorySelect) sqlScan(ctx context.Context, root *ApplicationHistoryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ahs.fns))
	for _, fn := range ahs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ahs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ahs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
