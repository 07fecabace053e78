package database

import (
	"github.com/uptrace/bun"
)

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

type whereClause struct {
	column   string
	operator string
	value    any
	isRaw    bool
	rawSQL   string
	rawArgs  []any
}

type orderClause struct {
	column    string
	direction OrderDirection
}

type joinClause struct {
	sql  string
	args []any
}

type relationClause struct {
	name  string
	apply []func(*bun.SelectQuery) *bun.SelectQuery
}

// QueryBuilder provides a fluent, type-safe API on top of bun. Column names
// pass through bun.Ident so user input can never reach the SQL text.
type QueryBuilder[T any] struct {
	db  *DB
	idb bun.IDB

	columnExprs []joinClause
	joins       []joinClause
	wheres      []whereClause
	orders      []orderClause
	relations   []relationClause
	limitVal    *int
	offsetVal   *int
}

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{
		db:  db,
		idb: db.DB,
	}
}

// WithTx runs the query inside the given transaction instead of the pool.
func (q *QueryBuilder[T]) WithTx(tx bun.IDB) *QueryBuilder[T] {
	q.idb = tx
	return q
}

// ColumnExpr adds a raw column expression to the SELECT list.
func (q *QueryBuilder[T]) ColumnExpr(sql string, args ...any) *QueryBuilder[T] {
	q.columnExprs = append(q.columnExprs, joinClause{sql: sql, args: args})
	return q
}

// Join adds a raw JOIN clause, e.g. "LEFT JOIN categories AS c ON c.id = p.category_id".
func (q *QueryBuilder[T]) Join(sql string, args ...any) *QueryBuilder[T] {
	q.joins = append(q.joins, joinClause{sql: sql, args: args})
	return q
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{column: column, operator: "=", value: value})
	return q
}

// WhereOp adds a WHERE condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{column: column, operator: operator, value: value})
	return q
}

// WhereRaw adds a raw WHERE condition
func (q *QueryBuilder[T]) WhereRaw(sql string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{isRaw: true, rawSQL: sql, rawArgs: args})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, orderClause{column: column, direction: direction})
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// Relation preloads a bun relation, optionally customized.
func (q *QueryBuilder[T]) Relation(name string, apply ...func(*bun.SelectQuery) *bun.SelectQuery) *QueryBuilder[T] {
	q.relations = append(q.relations, relationClause{name: name, apply: apply})
	return q
}

// applySelect copies the accumulated clauses onto a bun select query.
func (q *QueryBuilder[T]) applySelect(sel *bun.SelectQuery) *bun.SelectQuery {
	for _, c := range q.columnExprs {
		sel = sel.ColumnExpr(c.sql, c.args...)
	}
	for _, j := range q.joins {
		sel = sel.Join(j.sql, j.args...)
	}
	sel = applyWheresSelect(sel, q.wheres)
	for _, o := range q.orders {
		sel = sel.OrderExpr("? ?", bun.Ident(o.column), bun.Safe(o.direction))
	}
	for _, rel := range q.relations {
		rel := rel
		sel = sel.Relation(rel.name, rel.apply...)
	}
	if q.limitVal != nil {
		sel = sel.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		sel = sel.Offset(*q.offsetVal)
	}
	return sel
}

func applyWheresSelect(sel *bun.SelectQuery, wheres []whereClause) *bun.SelectQuery {
	for _, w := range wheres {
		if w.isRaw {
			sel = sel.Where(w.rawSQL, w.rawArgs...)
			continue
		}
		sel = sel.Where("? "+w.operator+" ?", bun.Ident(w.column), w.value)
	}
	return sel
}

func applyWheresUpdate(upd *bun.UpdateQuery, wheres []whereClause) *bun.UpdateQuery {
	for _, w := range wheres {
		if w.isRaw {
			upd = upd.Where(w.rawSQL, w.rawArgs...)
			continue
		}
		upd = upd.Where("? "+w.operator+" ?", bun.Ident(w.column), w.value)
	}
	return upd
}

func applyWheresDelete(del *bun.DeleteQuery, wheres []whereClause) *bun.DeleteQuery {
	for _, w := range wheres {
		if w.isRaw {
			del = del.Where(w.rawSQL, w.rawArgs...)
			continue
		}
		del = del.Where("? "+w.operator+" ?", bun.Ident(w.column), w.value)
	}
	return del
}
