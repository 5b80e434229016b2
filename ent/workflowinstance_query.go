// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"
	"staffhub/ent/predicate"
	"staffhub/ent/workflowinstance"
	"staffhub/ent/workflowtemplate"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// WorkflowInstanceQuery is the builder for querying WorkflowInstance entities.
type WorkflowInstanceQuery struct {
	config
	ctx          *QueryContext
	order        []workflowinstance.OrderOption
	inters       []Interceptor
	predicates   []predicate.WorkflowInstance
	withTemplate *WorkflowTemplateQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorkflowInstanceQuery builder.
func (wiq *WorkflowInstanceQuery) Where(ps ...predicate.WorkflowInstance) *WorkflowInstanceQuery {
	wiq.predicates = append(wiq.predicates, ps...)
	return wiq
}

// Limit the number of records to be returned by this query.
func (wiq *WorkflowInstanceQuery) Limit(limit int) *WorkflowInstanceQuery {
	wiq.ctx.Limit = &limit
	return wiq
}

// Offset to start from.
func (wiq *WorkflowInstanceQuery) Offset(offset int) *WorkflowInstanceQuery {
	wiq.ctx.Offset = &offset
	return wiq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wiq *WorkflowInstanceQuery) Unique(unique bool) *WorkflowInstanceQuery {
	wiq.ctx.Unique = &unique
	return wiq
}

// Order specifies how the records should be ordered.
func (wiq *WorkflowInstanceQuery) Order(o ...workflowinstance.OrderOption) *WorkflowInstanceQuery {
	wiq.order = append(wiq.order, o...)
	return wiq
}

// QueryTemplate chains the current query on the "template" edge.
func (wiq *WorkflowInstanceQuery) QueryTemplate() *WorkflowTemplateQuery {
	query := (&WorkflowTemplateClient{config: wiq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := wiq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := wiq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowinstance.Table, workflowinstance.FieldID, selector),
			sqlgraph.To(workflowtemplate.Table, workflowtemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowinstance.TemplateTable, workflowinstance.TemplateColumn),
		)
		fromU = sqlgraph.SetNeighbors(wiq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first WorkflowInstance entity from the query.
// Returns a *NotFoundError when no WorkflowInstance was found.
func (wiq *WorkflowInstanceQuery) First(ctx context.Context) (*WorkflowInstance, error) {
	nodes, err := wiq.Limit(1).All(setContextOp(ctx, wiq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workflowinstance.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wiq *WorkflowInstanceQuery) FirstX(ctx context.Context) *WorkflowInstance {
	node, err := wiq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WorkflowInstance ID from the query.
// Returns a *NotFoundError when no WorkflowInstance ID was found.
func (wiq *WorkflowInstanceQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = wiq.Limit(1).IDs(setContextOp(ctx, wiq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{workflowinstance.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wiq *WorkflowInstanceQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := wiq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WorkflowInstance entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WorkflowInstance entity is found.
// Returns a *NotFoundError when no WorkflowInstance entities are found.
func (wiq *WorkflowInstanceQuery) Only(ctx context.Context) (*WorkflowInstance, error) {
	nodes, err := wiq.Limit(2).All(setContextOp(ctx, wiq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workflowinstance.Label}
	default:
		return nil, &NotSingularError{workflowinstance.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wiq *WorkflowInstanceQuery) OnlyX(ctx context.Context) *WorkflowInstance {
	node, err := wiq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WorkflowInstance ID in the query.
// Returns a *NotSingularError when more than one WorkflowInstance ID is found.
// Returns a *NotFoundError when no entities are found.
func (wiq *WorkflowInstanceQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = wiq.Limit(2).IDs(setContextOp(ctx, wiq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{workflowinstance.Label}
	default:
		err = &NotSingularError{workflowinstance.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wiq *WorkflowInstanceQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := wiq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WorkflowInstances.
func (wiq *WorkflowInstanceQuery) All(ctx context.Context) ([]*WorkflowInstance, error) {
	ctx = setContextOp(ctx, wiq.ctx, ent.OpQueryAll)
	if err := wiq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WorkflowInstance, *WorkflowInstanceQuery]()
	return withInterceptors[[]*WorkflowInstance](ctx, wiq, qr, wiq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wiq *WorkflowInstanceQuery) AllX(ctx context.Context) []*WorkflowInstance {
	nodes, err := wiq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WorkflowInstance IDs.
func (wiq *WorkflowInstanceQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if wiq.ctx.Unique == nil && wiq.path != nil {
		wiq.Unique(true)
	}
	ctx = setContextOp(ctx, wiq.ctx, ent.OpQueryIDs)
	if err = wiq.Select(workflowinstance.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wiq *WorkflowInstanceQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := wiq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wiq *WorkflowInstanceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wiq.ctx, ent.OpQueryCount)
	if err := wiq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wiq, querierCount[*WorkflowInstanceQuery](), wiq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wiq *WorkflowInstanceQuery) CountX(ctx context.Context) int {
	count, err := wiq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wiq *WorkflowInstanceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wiq.ctx, ent.OpQueryExist)
	switch _, err := wiq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wiq *WorkflowInstanceQuery) ExistX(ctx context.Context) bool {
	exist, err := wiq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorkflowInstanceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wiq *WorkflowInstanceQuery) Clone() *WorkflowInstanceQuery {
	if wiq == nil {
		return nil
	}
	return &WorkflowInstanceQuery{
		config:       wiq.config,
		ctx:          wiq.ctx.Clone(),
		order:        append([]workflowinstance.OrderOption{}, wiq.order...),
		inters:       append([]Interceptor{}, wiq.inters...),
		predicates:   append([]predicate.WorkflowInstance{}, wiq.predicates...),
		withTemplate: wiq.withTemplate.Clone(),
		// clone intermediate query.
		sql:  wiq.sql.Clone(),
		path: wiq.path,
	}
}

// WithTemplate tells the query-builder to eager-load the nodes that are connected to
// the "template" edge. The optional arguments are used to configure the query builder of the edge.
func (wiq *WorkflowInstanceQuery) WithTemplate(opts ...func(*WorkflowTemplateQuery)) *WorkflowInstanceQuery {
	query := (&WorkflowTemplateClient{config: wiq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	wiq.withTemplate = query
	return wiq
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
//	client.WorkflowInstance.Query().
//		GroupBy(workflowinstance.FieldApplicationID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wiq *WorkflowInstanceQuery) GroupBy(field string, fields ...string) *WorkflowInstanceGroupBy {
	wiq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorkflowInstanceGroupBy{build: wiq}
	grbuild.flds = &wiq.ctx.Fields
	grbuild.label = workflowinstance.Label
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
//	client.WorkflowInstance.Query().
//		Select(workflowinstance.FieldApplicationID).
//		Scan(ctx, &v)
func (wiq *WorkflowInstanceQuery) Select(fields ...string) *WorkflowInstanceSelect {
	wiq.ctx.Fields = append(wiq.ctx.Fields, fields...)
	sbuild := &WorkflowInstanceSelect{WorkflowInstanceQuery: wiq}
	sbuild.label = workflowinstance.Label
	sbuild.flds, sbuild.scan = &wiq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorkflowInstanceSelect configured with the given aggregations.
func (wiq *WorkflowInstanceQuery) Aggregate(fns ...AggregateFunc) *WorkflowInstanceSelect {
	return wiq.Select().Aggregate(fns...)
}

func (wiq *WorkflowInstanceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wiq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wiq); err != nil {
				return err
			}
		}
	}
	for _, f := range wiq.ctx.Fields {
		if !workflowinstance.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wiq.path != nil {
		prev, err := wiq.path(ctx)
		if err != nil {
			return err
		}
		wiq.sql = prev
	}
	return nil
}

func (wiq *WorkflowInstanceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WorkflowInstance, error) {
	var (
		nodes       = []*WorkflowInstance{}
		_spec       = wiq.querySpec()
		loadedTypes = [1]bool{
			wiq.withTemplate != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WorkflowInstance).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WorkflowInstance{config: wiq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wiq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := wiq.withTemplate; query != nil {
		if err := wiq.loadTemplate(ctx, query, nodes, nil,
			func(n *WorkflowInstance, e *WorkflowTemplate) { n.Edges.Template = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (wiq *WorkflowInstanceQuery) loadTemplate(ctx context.Context, query *WorkflowTemplateQuery, nodes []*WorkflowInstance, init func(*WorkflowInstance), assign func(*WorkflowInstance, *WorkflowTemplate)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*WorkflowInstance)
	for i := range nodes {
		fk := nodes[i].TemplateID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(workflowtemplate.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "template_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (wiq *WorkflowInstanceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wiq.querySpec()
	_spec.Node.Columns = wiq.ctx.Fields
	if len(wiq.ctx.Fields) > 0 {
		_spec.Unique = wiq.ctx.Unique != nil && *wiq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wiq.driver, _spec)
}

func (wiq *WorkflowInstanceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(workflowinstance.Table, workflowinstance.Columns, sqlgraph.NewFieldSpec(workflowinstance.FieldID, field.TypeUUID))
	_spec.From = wiq.sql
	if unique := wiq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wiq.path != nil {
		_spec.Unique = true
	}
	if fields := wiq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowinstance.FieldID)
		for i := range fields {
			if fields[i] != workflowinstance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if wiq.withTemplate != nil {
			_spec.Node.AddColumnOnce(workflowinstance.FieldTemplateID)
		}
	}
	if ps := wiq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wiq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wiq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wiq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wiq *WorkflowInstanceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wiq.driver.Dialect())
	t1 := builder.Table(workflowinstance.Table)
	columns := wiq.ctx.Fields
	if len(columns) == 0 {
		columns = workflowinstance.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wiq.sql != nil {
		selector = wiq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wiq.ctx.Unique != nil && *wiq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range wiq.predicates {
		p(selector)
	}
	for _, p := range wiq.order {
		p(selector)
	}
	if offset := wiq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wiq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WorkflowInstanceGroupBy is the group-by builder for WorkflowInstance entities.
type WorkflowInstanceGroupBy struct {
	selector
	build *WorkflowInstanceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wigb *WorkflowInstanceGroupBy) Aggregate(fns ...AggregateFunc) *WorkflowInstanceGroupBy {
	wigb.fns = append(wigb.fns, fns...)
	return wigb
}

// Scan applies the selector query and scans the result into the given value.
func (wigb *WorkflowInstanceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wigb.build.ctx, ent.OpQueryGroupBy)
	if err := wigb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkflowInstanceQuery, *WorkflowInstanceGroupBy](ctx, wigb.build, wigb, wigb.build.inters, v)
}

func (wigb *WorkflowInstanceGroupBy) sqlScan(ctx context.Context, root *WorkflowInstanceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wigb.fns))
	for _, fn := range wigb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wigb.flds)+len(wigb.fns))
		for _, f := range *wigb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wigb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wigb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WorkflowInstanceSelect is the builder for selecting fields of WorkflowInstance entities.
type WorkflowInstanceSelect struct {
	*WorkflowInstanceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wis *WorkflowInstanceSelect) Aggregate(fns ...AggregateFunc) *WorkflowInstanceSelect {
	wis.fns = append(wis.fns, fns...)
	return wis
}

// Scan applies the selector query and scans the result into the given value.
func (wis *WorkflowInstanceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wis.ctx, ent.OpQuerySelect)
	if err := wis.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkflowInstanceQuery, *WorkflowInstanceSelect](ctx, wis.WorkflowInstanceQuery, wis, wis.inters, v)
}

func (wis *WorkflowInstanceSelect) sqlScan(ctx context.Context, root *WorkflowInstanceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wis.fns))
	for _, fn := range wis.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wis.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wis.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
