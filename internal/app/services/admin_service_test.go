package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

type fakeRunner struct {
	calls  int
	result *dto.AdminQueryResult
	err    error
}

func (f *fakeRunner) RunReadQuery(ctx context.Context, query string) (*dto.AdminQueryResult, error) {
	f.calls++
	return f.result, f.err
}

func TestRunQueryRejectsForbiddenKeywords(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"drop", "DROP TABLE faculty"},
		{"lowercase delete", "delete from departments"},
		{"embedded update", "SELECT * FROM faculty; UPDATE faculty SET name = 'x'"},
		{"mixed case truncate", "TrUnCaTe faculty_awards"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			service := NewAdminService(runner)

			result, err := service.RunQuery(context.Background(), tt.query)

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrQueryForbidden))
			assert.Nil(t, result)
			assert.Zero(t, runner.calls, "statement must never reach the database")
		})
	}
}

func TestRunQueryRejectsEmptyStatement(t *testing.T) {
	runner := &fakeRunner{}
	service := NewAdminService(runner)

	_, err := service.RunQuery(context.Background(), "   ")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
	assert.Zero(t, runner.calls)
}

func TestRunQueryPassesCleanStatements(t *testing.T) {
	expected := &dto.AdminQueryResult{
		Columns: []string{"id", "name"},
		Rows:    []map[string]interface{}{{"id": int64(1), "name": "Computer Science and Engineering"}},
		Count:   1,
	}
	runner := &fakeRunner{result: expected}
	service := NewAdminService(runner)

	result, err := service.RunQuery(context.Background(), "SELECT id, name FROM departments")

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.Equal(t, 1, runner.calls)
}

func TestRunQuerySurfacesRunnerErrors(t *testing.T) {
	runner := &fakeRunner{err: errors.New("relation does not exist")}
	service := NewAdminService(runner)

	_, err := service.RunQuery(context.Background(), "SELECT * FROM missing_table")

	require.Error(t, err)
	assert.Equal(t, 1, runner.calls)
}
