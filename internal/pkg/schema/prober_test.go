package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) > 0 {
		if b, ok := dest[0].(*bool); ok {
			*b = r.exists
		}
	}
	return nil
}

type fakeQuerier struct {
	rows  map[string]fakeRow // keyed by first query arg
	err   error
	calls []string
}

func (q *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	name, _ := args[0].(string)
	q.calls = append(q.calls, name)
	if q.err != nil {
		return fakeRow{err: q.err}
	}
	return q.rows[name]
}

func TestTableExists(t *testing.T) {
	q := &fakeQuerier{rows: map[string]fakeRow{
		"departments":        {exists: true},
		"department_details": {exists: false},
	}}
	p := NewProber(q)

	assert.True(t, p.TableExists(context.Background(), "departments"))
	assert.False(t, p.TableExists(context.Background(), "department_details"))
}

func TestProbeFailureTreatedAsAbsent(t *testing.T) {
	q := &fakeQuerier{err: errors.New("connection reset")}
	p := NewProber(q)

	assert.False(t, p.TableExists(context.Background(), "departments"))
	assert.False(t, p.ColumnExists(context.Background(), "departments", "name"))
}

func TestFirstExistingTable(t *testing.T) {
	q := &fakeQuerier{rows: map[string]fakeRow{
		"faculty_contributions": {exists: false},
		"faculty_activities":    {exists: true},
	}}
	p := NewProber(q)

	got := p.FirstExistingTable(context.Background(), "faculty_contributions", "faculty_activities")
	assert.Equal(t, "faculty_activities", got)
	assert.Equal(t, []string{"faculty_contributions", "faculty_activities"}, q.calls)
}

func TestFirstExistingTableNone(t *testing.T) {
	q := &fakeQuerier{rows: map[string]fakeRow{}}
	p := NewProber(q)

	assert.Equal(t, "", p.FirstExistingTable(context.Background(), "faculty_contributions", "faculty_activities"))
}

func TestValidateRequiredReportsMissing(t *testing.T) {
	q := &fakeQuerier{rows: map[string]fakeRow{}}
	p := NewProber(q)

	err := p.ValidateRequired(context.Background())
	assert.ErrorIs(t, err, ErrSchemaIncompatible)
	assert.Contains(t, err.Error(), "missing tables")
}
