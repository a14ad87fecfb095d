package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
	"github.com/acadbase/acadbase/internal/pkg/logger"
	"github.com/acadbase/acadbase/internal/pkg/querybuilder"
)

// queryRunner is what the admin service needs from its repository.
type queryRunner interface {
	RunReadQuery(ctx context.Context, query string) (*dto.AdminQueryResult, error)
}

// AdminService screens and runs ad-hoc read statements for the admin
// console. The keyword denylist runs before the statement ever reaches
// the database.
type AdminService struct {
	runner queryRunner
}

// NewAdminService creates a new admin service
func NewAdminService(runner queryRunner) *AdminService {
	return &AdminService{runner: runner}
}

// RunQuery screens the statement against the keyword denylist and, when
// clean, executes it. Mutating keywords anywhere in the statement are
// rejected outright.
func (s *AdminService) RunQuery(ctx context.Context, query string) (*dto.AdminQueryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewBadRequestError("query must not be empty")
	}

	if keyword, found := querybuilder.ForbiddenKeyword(query); found {
		logger.Warn().Str("keyword", keyword).Msg("Rejected admin query containing forbidden keyword")
		return nil, apperrors.NewCustomError(apperrors.ErrQueryForbidden,
			fmt.Sprintf("query contains forbidden keyword: %s", keyword))
	}

	return s.runner.RunReadQuery(ctx, query)
}
