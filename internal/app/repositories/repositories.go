package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/pkg/schema"
)

// Repositories bundles every repository over one shared pool. The pool is
// an explicitly constructed dependency, injected here; nothing in the
// repositories reaches for process-wide state.
type Repositories struct {
	DepartmentRepository   *DepartmentRepository
	FacultyRepository      *FacultyRepository
	PublicationRepository  *PublicationRepository
	AwardRepository        *AwardRepository
	ContributionRepository *ContributionRepository
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	AdminRepository        *AdminRepository
}

// NewRepositories creates the repository set.
func NewRepositories(pool *pgxpool.Pool, prober *schema.Prober) *Repositories {
	return &Repositories{
		DepartmentRepository:   NewDepartmentRepository(pool, prober),
		FacultyRepository:      NewFacultyRepository(pool, prober),
		PublicationRepository:  NewPublicationRepository(pool),
		AwardRepository:        NewAwardRepository(pool),
		ContributionRepository: NewContributionRepository(pool, prober),
		UserRepository:         NewUserRepository(pool),
		TokenRepository:        NewTokenRepository(pool),
		AdminRepository:        NewAdminRepository(pool),
	}
}
