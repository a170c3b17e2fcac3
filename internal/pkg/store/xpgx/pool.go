// Package xpgx wraps a pgx pool with squirrel-aware helpers that scan rows
// into structs by their db tags.
package xpgx

import (
	"context"
	"fmt"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error)
	Getx(ctx context.Context, dest any, q squirrel.Sqlizer) error
	Selectx(ctx context.Context, dest any, q squirrel.Sqlizer) error
}

type pool struct {
	inner *pgxpool.Pool
}

func NewPool(inner *pgxpool.Pool) Pool {
	return &pool{inner: inner}
}

func (p *pool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return p.inner.Exec(ctx, sql, args...)
}

func (p *pool) Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return p.inner.Exec(ctx, sql, args...)
}

// Getx scans the first row into dest, a pointer to a struct with db tags.
// Returns pgx.ErrNoRows when the query matches nothing.
func (p *pool) Getx(ctx context.Context, dest any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	rows, err := p.inner.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}

	if err := scanRow(rows, dest); err != nil {
		return err
	}
	return rows.Err()
}

// Selectx scans all rows into dest, a pointer to a slice of structs or
// struct pointers.
func (p *pool) Selectx(ctx context.Context, dest any, q squirrel.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	rows, err := p.inner.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	slicePtr := reflect.ValueOf(dest)
	if slicePtr.Kind() != reflect.Ptr || slicePtr.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("dest must be a pointer to a slice, got %T", dest)
	}
	sliceVal := slicePtr.Elem()
	elemType := sliceVal.Type().Elem()

	isPtr := elemType.Kind() == reflect.Ptr
	structType := elemType
	if isPtr {
		structType = elemType.Elem()
	}

	for rows.Next() {
		item := reflect.New(structType)
		if err := scanRow(rows, item.Interface()); err != nil {
			return err
		}
		if isPtr {
			sliceVal = reflect.Append(sliceVal, item)
		} else {
			sliceVal = reflect.Append(sliceVal, item.Elem())
		}
	}
	slicePtr.Elem().Set(sliceVal)

	return rows.Err()
}

// scanRow maps the current row onto dest fields by db tag. Columns without
// a matching field are discarded.
func scanRow(rows pgx.Rows, dest any) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dest must be a pointer to a struct, got %T", dest)
	}
	elem := v.Elem()

	byTag := make(map[string]reflect.Value, elem.NumField())
	collectFields(elem, byTag)

	descs := rows.FieldDescriptions()
	targets := make([]any, len(descs))
	for i, fd := range descs {
		if fv, ok := byTag[string(fd.Name)]; ok {
			targets[i] = fv.Addr().Interface()
		} else {
			targets[i] = new(any)
		}
	}

	return rows.Scan(targets...)
}

func collectFields(elem reflect.Value, byTag map[string]reflect.Value) {
	t := elem.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(elem.Field(i), byTag)
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		byTag[tag] = elem.Field(i)
	}
}
