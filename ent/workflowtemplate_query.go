// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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

// WorkflowTemplateQuery is the builder for querying WorkflowTemplate entities.
type WorkflowTemplateQuery struct {
	config
	ctx           *QueryContext
	order         []workflowtemplate.OrderOption
	inters        []Interceptor
	predicates    []predicate.WorkflowTemplate
	withInstances *WorkflowInstanceQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorkflowTemplateQuery builder.
func (wtq *WorkflowTemplateQuery) Where(ps ...predicate.WorkflowTemplate) *WorkflowTemplateQuery {
	wtq.predicates = append(wtq.predicates, ps...)
	return wtq
}

// Limit the number of records to be returned by this query.
func (wtq *WorkflowTemplateQuery) Limit(limit int) *WorkflowTemplateQuery {
	wtq.ctx.Limit = &limit
	return wtq
}

// Offset to start from.
func (wtq *WorkflowTemplateQuery) Offset(offset int) *WorkflowTemplateQuery {
	wtq.ctx.Offset = &offset
	return wtq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wtq *WorkflowTemplateQuery) Unique(unique bool) *WorkflowTemplateQuery {
	wtq.ctx.Unique = &unique
	return wtq
}

// Order specifies how the records should be ordered.
func (wtq *WorkflowTemplateQuery) Order(o ...workflowtemplate.OrderOption) *WorkflowTemplateQuery {
	wtq.order = append(wtq.order, o...)
	return wtq
}

// QueryInstances chains the current query on the "instances" edge.
func (wtq *WorkflowTemplateQuery) QueryInstances() *WorkflowInstanceQuery {
	query := (&WorkflowInstanceClient{config: wtq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := wtq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := wtq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowtemplate.Table, workflowtemplate.FieldID, selector),
			sqlgraph.To(workflowinstance.Table, workflowinstance.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowtemplate.InstancesTable, workflowtemplate.InstancesColumn),
		)
		fromU = sqlgraph.SetNeighbors(wtq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first WorkflowTemplate entity from the query.
// Returns a *NotFoundError when no WorkflowTemplate was found.
func (wtq *WorkflowTemplateQuery) First(ctx context.Context) (*WorkflowTemplate, error) {
	nodes, err := wtq.Limit(1).All(setContextOp(ctx, wtq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workflowtemplate.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wtq *WorkflowTemplateQuery) FirstX(ctx context.Context) *WorkflowTemplate {
	node, err := wtq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WorkflowTemplate ID from the query.
// Returns a *NotFoundError when no WorkflowTemplate ID was found.
func (wtq *WorkflowTemplateQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = wtq.Limit(1).IDs(setContextOp(ctx, wtq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{workflowtemplate.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wtq *WorkflowTemplateQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := wtq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WorkflowTemplate entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WorkflowTemplate entity is found.
// Returns a *NotFoundError when no WorkflowTemplate entities are found.
func (wtq *WorkflowTemplateQuery) Only(ctx context.Context) (*WorkflowTemplate, error) {
	nodes, err := wtq.Limit(2).All(setContextOp(ctx, wtq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workflowtemplate.Label}
	default:
		return nil, &NotSingularError{workflowtemplate.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wtq *WorkflowTemplateQuery) OnlyX(ctx context.Context) *WorkflowTemplate {
	node, err := wtq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WorkflowTemplate ID in the query.
// Returns a *NotSingularError when more than one WorkflowTemplate ID is found.
// Returns a *NotFoundError when no entities are found.
func (wtq *WorkflowTemplateQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = wtq.Limit(2).IDs(setContextOp(ctx, wtq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{workflowtemplate.Label}
	default:
		err = &NotSingularError{workflowtemplate.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wtq *WorkflowTemplateQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := wtq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WorkflowTemplates.
func (wtq *WorkflowTemplateQuery) All(ctx context.Context) ([]*WorkflowTemplate, error) {
	ctx = setContextOp(ctx, wtq.ctx, ent.OpQueryAll)
	if err := wtq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WorkflowTemplate, *WorkflowTemplateQuery]()
	return withInterceptors[[]*WorkflowTemplate](ctx, wtq, qr, wtq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wtq *WorkflowTemplateQuery) AllX(ctx context.Context) []*WorkflowTemplate {
	nodes, err := wtq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WorkflowTemplate IDs.
func (wtq *WorkflowTemplateQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if wtq.ctx.Unique == nil && wtq.path != nil {
		wtq.Unique(true)
	}
	ctx = setContextOp(ctx, wtq.ctx, ent.OpQueryIDs)
	if err = wtq.Select(workflowtemplate.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wtq *WorkflowTemplateQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := wtq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wtq *WorkflowTemplateQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wtq.ctx, ent.OpQueryCount)
	if err := wtq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wtq, querierCount[*WorkflowTemplateQuery](), wtq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wtq *WorkflowTemplateQuery) CountX(ctx context.Context) int {
	count, err := wtq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wtq *WorkflowTemplateQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wtq.ctx, ent.OpQueryExist)
	switch _, err := wtq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wtq *WorkflowTemplateQuery) ExistX(ctx context.Context) bool {
	exist, err := wtq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorkflowTemplateQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wtq *WorkflowTemplateQuery) Clone() *WorkflowTemplateQuery {
	if wtq == nil {
		return nil
	}
	return &WorkflowTemplateQuery{
		config:        wtq.config,
		ctx:           wtq.ctx.Clone(),
		order:         append([]workflowtemplate.OrderOption{}, wtq.order...),
		inters:        append([]Interceptor{}, wtq.inters...),
		predicates:    append([]predicate.WorkflowTemplate{}, wtq.predicates...),
		withInstances: wtq.withInstances.Clone(),
		// clone intermediate query.
		sql:  wtq.sql.Clone(),
		path: wtq.path,
	}
}

// WithInstances tells the query-builder to eager-load the nodes that are connected to
// the "instances" edge. The optional arguments are used to configure the query builder of the edge.
func (wtq *WorkflowTemplateQuery) WithInstances(opts ...func(*WorkflowInstanceQuery)) *WorkflowTemplateQuery {
	query := (&WorkflowInstanceClient{config: wtq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	wtq.withInstances = query
	return wtq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.WorkflowTemplate.Query().
//		GroupBy(workflowtemplate.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wtq *WorkflowTemplateQuery) GroupBy(field string, fields ...string) *WorkflowTemplateGroupBy {
	wtq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorkflowTemplateGroupBy{build: wtq}
	grbuild.flds = &wtq.ctx.Fields
	grbuild.label = workflowtemplate.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.WorkflowTemplate.Query().
//		Select(workflowtemplate.FieldName).
//		Scan(ctx, &v)
func (wtq *WorkflowTemplateQuery) Select(fields ...string) *WorkflowTemplateSelect {
	wtq.ctx.Fields = append(wtq.ctx.Fields, fields...)
	sbuild := &WorkflowTemplateSelect{WorkflowTemplateQuery: wtq}
	sbuild.label = workflowtemplate.Label
	sbuild.flds, sbuild.scan = &wtq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorkflowTemplateSelect configured with the given aggregations.
func (wtq *WorkflowTemplateQuery) Aggregate(fns ...AggregateFunc) *WorkflowTemplateSelect {
	return wtq.Select().Aggregate(fns...)
}

func (wtq *WorkflowTemplateQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wtq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wtq); err != nil {
				return err
			}
		}
	}
	for _, f := range wtq.ctx.Fields {
		if !workflowtemplate.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wtq.path != nil {
		prev, err := wtq.path(ctx)
		if err != nil {
			return err
		}
		wtq.sql = prev
	}
	return nil
}

func (wtq *WorkflowTemplateQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WorkflowTemplate, error) {
	var (
		nodes       = []*WorkflowTemplate{}
		_spec       = wtq.querySpec()
		loadedTypes = [1]bool{
			wtq.withInstances != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WorkflowTemplate).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WorkflowTemplate{config: wtq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wtq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := wtq.withInstances; query != nil {
		if err := wtq.loadInstances(ctx, query, nodes,
			func(n *WorkflowTemplate) { n.Edges.Instances = []*WorkflowInstance{} },
			func(n *WorkflowTemplate, e *WorkflowInstance) { n.Edges.Instances = append(n.Edges.Instances, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (wtq *WorkflowTemplateQuery) loadInstances(ctx context.Context, query *WorkflowInstanceQuery, nodes []*WorkflowTemplate, init func(*WorkflowTemplate), assign func(*WorkflowTemplate, *WorkflowInstance)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*WorkflowTemplate)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(workflowinstance.FieldTemplateID)
	}
	query.Where(predicate.WorkflowInstance(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workflowtemplate.InstancesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TemplateID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "template_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (wtq *WorkflowTemplateQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wtq.querySpec()
	_spec.Node.Columns = wtq.ctx.Fields
	if len(wtq.ctx.Fields) > 0 {
		_spec.Unique = wtq.ctx.Unique != nil && *wtq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wtq.driver, _spec)
}

func (wtq *WorkflowTemplateQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(workflowtemplate.Table, workflowtemplate.Columns, sqlgraph.NewFieldSpec(workflowtemplate.FieldID, field.TypeUUID))
	_spec.From = wtq.sql
	if unique := wtq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wtq.path != nil {
		_spec.Unique = true
	}
	if fields := wtq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowtemplate.FieldID)
		for i := range fields {
			if fields[i] != workflowtemplate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := wtq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wtq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wtq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wtq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wtq *WorkflowTemplateQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wtq.driver.Dialect())
	t1 := builder.Table(workflowtemplate.Table)
	columns := wtq.ctx.Fields
	if len(columns) == 0 {
		columns = workflowtemplate.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wtq.sql != nil {
		selector = wtq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wtq.ctx.Unique != nil && *wtq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range wtq.predicates {
		p(selector)
	}
	for _, p := range wtq.order {
		p(selector)
	}
	if offset := wtq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wtq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WorkflowTemplateGroupBy is the group-by builder for WorkflowTemplate entities.
type WorkflowTemplateGroupBy struct {
	selector
	build *WorkflowTemplateQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wtgb *WorkflowTemplateGroupBy) Aggregate(fns ...AggregateFunc) *WorkflowTemplateGroupBy {
	wtgb.fns = append(wtgb.fns, fns...)
	return wtgb
}

// Scan applies the selector query and scans the result into the given value.
func (wtgb *WorkflowTemplateGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wtgb.build.ctx, ent.OpQueryGroupBy)
	if err := wtgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkflowTemplateQuery, *WorkflowTemplateGroupBy](ctx, wtgb.build, wtgb, wtgb.build.inters, v)
}

func (wtgb *WorkflowTemplateGroupBy) sqlScan(ctx context.Context, root *WorkflowTemplateQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wtgb.fns))
	for _, fn := range wtgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wtgb.flds)+len(wtgb.fns))
		for _, f := range *wtgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wtgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wtgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WorkflowTemplateSelect is the builder for selecting fields of WorkflowTemplate entities.
type WorkflowTemplateSelect struct {
	*WorkflowTemplateQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wts *WorkflowTemplateSelect) Aggregate(fns ...AggregateFunc) *WorkflowTemplateSelect {
	wts.fns = append(wts.fns, fns...)
	return wts
}

// Scan applies the selector query and scans the result into the given value.
func (wts *WorkflowTemplateSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wts.ctx, ent.OpQuerySelect)
	if err := wts.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkflowTemplateQuery, *WorkflowTemplateSelect](ctx, wts.WorkflowTemplateQuery, wts, wts.inters, v)
}

func (wts *WorkflowTemplateSelect) sqlScan(ctx context.Context, root *WorkflowTemplateQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wts.fns))
	for _, fn := range wts.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wts.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wts.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
