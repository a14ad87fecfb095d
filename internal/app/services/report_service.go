package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/acadbase/acadbase/internal/app/models"
	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/repositories"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
	"github.com/acadbase/acadbase/internal/pkg/logger"
	"github.com/acadbase/acadbase/internal/pkg/querybuilder"
	"github.com/acadbase/acadbase/internal/pkg/report"
)

// ReportService assembles report documents from repository data and
// renders them to PDF. A failed section fetch degrades that section, it
// never aborts the document.
type ReportService struct {
	facultyRepo      *repositories.FacultyRepository
	departmentRepo   *repositories.DepartmentRepository
	publicationRepo  *repositories.PublicationRepository
	awardRepo        *repositories.AwardRepository
	contributionRepo *repositories.ContributionRepository
	composer         *report.Composer
	currencyCode     string
}

// NewReportService creates a new report service
func NewReportService(
	facultyRepo *repositories.FacultyRepository,
	departmentRepo *repositories.DepartmentRepository,
	publicationRepo *repositories.PublicationRepository,
	awardRepo *repositories.AwardRepository,
	contributionRepo *repositories.ContributionRepository,
	composer *report.Composer,
	currencyCode string,
) *ReportService {
	return &ReportService{
		facultyRepo:      facultyRepo,
		departmentRepo:   departmentRepo,
		publicationRepo:  publicationRepo,
		awardRepo:        awardRepo,
		contributionRepo: contributionRepo,
		composer:         composer,
		currencyCode:     currencyCode,
	}
}

// GenerateBiodata renders a single faculty member's biodata document. The
// faculty row itself must exist; every other section degrades gracefully.
func (s *ReportService) GenerateBiodata(ctx context.Context, facultyID string) (*dto.ReportResponse, error) {
	content, pages, fileName, err := s.BiodataPDF(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	return encodeResponse(content, pages, fileName), nil
}

// BiodataPDF renders the biodata document and returns the raw bytes.
func (s *ReportService) BiodataPDF(ctx context.Context, facultyID string) ([]byte, []string, string, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, nil, "", err
	}
	if faculty == nil {
		return nil, nil, "", apperrors.ErrFacultyNotFound
	}

	doc := report.Document{
		Title:       "Faculty Biodata",
		Subtitle:    fmt.Sprintf("%s (%s)", faculty.Name, faculty.ID),
		GeneratedAt: time.Now(),
	}

	doc.Sections = append(doc.Sections, s.personalSection(faculty))
	doc.Sections = append(doc.Sections, s.publicationSection(ctx, facultyID))
	doc.Sections = append(doc.Sections, s.awardSection(ctx, facultyID))
	doc.Sections = append(doc.Sections, s.contributionSection(ctx, facultyID))
	doc.Signatures = s.signatureBlock(ctx, faculty)

	content, pages, err := s.composer.Compose(doc)
	if err != nil {
		return nil, nil, "", err
	}
	return content, pages, fmt.Sprintf("biodata_%s.pdf", faculty.ID), nil
}

// GenerateComprehensive renders the full faculty report: biodata sections
// plus the member's department context.
func (s *ReportService) GenerateComprehensive(ctx context.Context, facultyID string) (*dto.ReportResponse, error) {
	content, pages, fileName, err := s.ComprehensivePDF(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	return encodeResponse(content, pages, fileName), nil
}

// ComprehensivePDF renders the comprehensive faculty report and returns
// the raw bytes.
func (s *ReportService) ComprehensivePDF(ctx context.Context, facultyID string) ([]byte, []string, string, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, nil, "", err
	}
	if faculty == nil {
		return nil, nil, "", apperrors.ErrFacultyNotFound
	}

	doc := report.Document{
		Title:       "Comprehensive Faculty Report",
		Subtitle:    fmt.Sprintf("%s (%s)", faculty.Name, faculty.ID),
		GeneratedAt: time.Now(),
	}

	doc.Sections = append(doc.Sections, s.personalSection(faculty))
	doc.Sections = append(doc.Sections, s.departmentOverviewSection(ctx, faculty.DepartmentName))
	doc.Sections = append(doc.Sections, s.publicationSection(ctx, facultyID))
	doc.Sections = append(doc.Sections, s.awardSection(ctx, facultyID))
	doc.Sections = append(doc.Sections, s.contributionSection(ctx, facultyID))
	doc.Sections = append(doc.Sections, s.membershipSection(ctx, facultyID))
	doc.Signatures = s.signatureBlock(ctx, faculty)

	content, pages, err := s.composer.Compose(doc)
	if err != nil {
		return nil, nil, "", err
	}
	return content, pages, fmt.Sprintf("comprehensive_%s.pdf", faculty.ID), nil
}

// GenerateInstitutional renders one of the institutional report variants.
func (s *ReportService) GenerateInstitutional(ctx context.Context, reportType string) (*dto.ReportResponse, error) {
	content, pages, fileName, err := s.InstitutionalPDF(ctx, reportType)
	if err != nil {
		return nil, err
	}
	return encodeResponse(content, pages, fileName), nil
}

// InstitutionalPDF renders an institutional report and returns the raw
// bytes.
func (s *ReportService) InstitutionalPDF(ctx context.Context, reportType string) ([]byte, []string, string, error) {
	t, ok := report.ParseType(reportType)
	if !ok {
		return nil, nil, "", apperrors.ErrUnknownReportType
	}

	doc := report.Document{GeneratedAt: time.Now()}
	switch t {
	case report.TypeFaculty:
		doc.Title = "Faculty Report"
		doc.Sections = []report.Section{s.facultyRosterSection(ctx)}
	case report.TypeStudent:
		doc.Title = "Student Strength Report"
		doc.Sections = []report.Section{s.studentStrengthSection(ctx)}
	case report.TypeResearch:
		doc.Title = "Research Output Report"
		doc.Sections = []report.Section{s.researchSection(ctx)}
	case report.TypeFull:
		doc.Title = "Institutional Report"
		doc.Sections = []report.Section{
			s.facultyRosterSection(ctx),
			s.studentStrengthSection(ctx),
			s.researchSection(ctx),
			s.awardSummarySection(ctx),
		}
	}

	content, pages, err := s.composer.Compose(doc)
	if err != nil {
		return nil, nil, "", err
	}
	return content, pages, fmt.Sprintf("%s_report.pdf", t), nil
}

func (s *ReportService) personalSection(faculty *models.Faculty) report.Section {
	stats := []report.Stat{
		{Label: "Name", Value: faculty.Name},
		{Label: "Faculty ID", Value: faculty.ID},
		{Label: "Department", Value: faculty.DepartmentName},
	}
	if faculty.Email != "" {
		stats = append(stats, report.Stat{Label: "Email", Value: faculty.Email})
	}
	stats = append(stats, report.Stat{Label: "Date of Joining", Value: faculty.JoinDate.Format("02 Jan 2006")})
	if faculty.Details != nil {
		if faculty.Details.Designation != "" {
			stats = append(stats, report.Stat{Label: "Designation", Value: faculty.Details.Designation})
		}
		if faculty.Details.Degree != "" {
			stats = append(stats, report.Stat{Label: "Highest Qualification", Value: faculty.Details.Degree})
		}
		if faculty.Details.ExperienceYears > 0 {
			stats = append(stats, report.Stat{Label: "Experience", Value: fmt.Sprintf("%d years", faculty.Details.ExperienceYears)})
		}
	}
	return report.OkSection("Personal Information", nil, stats...)
}

func (s *ReportService) departmentOverviewSection(ctx context.Context, departmentName string) report.Section {
	const title = "Department Overview"
	department, err := s.departmentRepo.GetByName(ctx, departmentName)
	if err != nil {
		logger.Warn().Err(err).Str("department", departmentName).Msg("Department overview section degraded")
		return report.UnavailableSection(title, err.Error())
	}
	if department == nil {
		return report.UnavailableSection(title, fmt.Sprintf("department %q not found", departmentName))
	}

	stats := []report.Stat{
		{Label: "Department", Value: department.Name},
	}
	if department.Code != "" {
		stats = append(stats, report.Stat{Label: "Code", Value: department.Code})
	}

	withDetails, err := s.departmentRepo.GetByID(ctx, department.ID)
	if err == nil && withDetails != nil && withDetails.Details != nil {
		d := withDetails.Details
		if d.EstablishmentYear > 0 {
			stats = append(stats, report.Stat{Label: "Established", Value: strconv.Itoa(d.EstablishmentYear)})
		}
		if d.StudentCount > 0 {
			stats = append(stats, report.Stat{Label: "Students", Value: strconv.Itoa(d.StudentCount)})
		}
		if d.FacultyCount > 0 {
			stats = append(stats, report.Stat{Label: "Faculty Members", Value: strconv.Itoa(d.FacultyCount)})
		}
	}

	return report.OkSection(title, nil, stats...)
}

func (s *ReportService) publicationSection(ctx context.Context, facultyID string) report.Section {
	const title = "Publications"
	publications, err := s.publicationRepo.ListByFaculty(ctx, facultyID)
	if err != nil {
		logger.Warn().Err(err).Str("facultyId", facultyID).Msg("Publication section degraded")
		return report.UnavailableSection(title, err.Error())
	}

	table := &report.Table{
		Columns: []string{"Title", "Journal", "Year", "Citations"},
		Widths:  []float64{85, 55, 20, 20},
	}
	totalCitations := 0
	for _, p := range publications {
		table.Rows = append(table.Rows, []string{
			p.Title, p.Journal, strconv.Itoa(p.Year), strconv.Itoa(p.CitationCount)})
		totalCitations += p.CitationCount
	}
	return report.OkSection(title, table,
		report.Stat{Label: "Total Publications", Value: strconv.Itoa(len(publications))},
		report.Stat{Label: "Total Citations", Value: strconv.Itoa(totalCitations)})
}

func (s *ReportService) awardSection(ctx context.Context, facultyID string) report.Section {
	const title = "Awards and Honors"
	awards, err := s.awardRepo.ListByFaculty(ctx, facultyID)
	if err != nil {
		logger.Warn().Err(err).Str("facultyId", facultyID).Msg("Award section degraded")
		return report.UnavailableSection(title, err.Error())
	}

	table := &report.Table{
		Columns: []string{"Title", "Issued By", "Date", "Prize"},
		Widths:  []float64{70, 55, 25, 30},
	}
	for _, a := range awards {
		table.Rows = append(table.Rows, []string{
			a.Title, a.IssuedBy, a.AwardedOn.Format("02 Jan 2006"),
			report.Currency(a.PrizeAmount, s.currencyCode)})
	}
	return report.OkSection(title, table)
}

func (s *ReportService) contributionSection(ctx context.Context, facultyID string) report.Section {
	const title = "Contributions and Activities"
	contributions, err := s.contributionRepo.ListByFaculty(ctx, facultyID)
	if err != nil {
		logger.Warn().Err(err).Str("facultyId", facultyID).Msg("Contribution section degraded")
		return report.UnavailableSection(title, err.Error())
	}

	table := &report.Table{
		Columns: []string{"Type", "Title", "Date"},
		Widths:  []float64{45, 105, 30},
	}
	for _, c := range contributions {
		table.Rows = append(table.Rows, []string{
			c.Kind, c.Title, c.OccurredOn.Format("02 Jan 2006")})
	}
	return report.OkSection(title, table)
}

func (s *ReportService) membershipSection(ctx context.Context, facultyID string) report.Section {
	const title = "Professional Memberships"
	memberships, err := s.contributionRepo.ListMembershipsByFaculty(ctx, facultyID)
	if err != nil {
		logger.Warn().Err(err).Str("facultyId", facultyID).Msg("Membership section degraded")
		return report.UnavailableSection(title, err.Error())
	}

	table := &report.Table{
		Columns: []string{"Organization", "Grade", "Member Since"},
		Widths:  []float64{95, 50, 35},
	}
	for _, m := range memberships {
		table.Rows = append(table.Rows, []string{
			m.Organization, m.Grade, m.MemberSince.Format("02 Jan 2006")})
	}
	return report.OkSection(title, table)
}

// signatureBlock resolves the faculty member's HOD through the department
// details companion. Any failure along the chain falls back to a
// placeholder name rather than degrading the document.
func (s *ReportService) signatureBlock(ctx context.Context, faculty *models.Faculty) *report.SignatureBlock {
	sig := &report.SignatureBlock{FacultyName: faculty.Name, HODName: "Unknown Faculty"}

	department, err := s.departmentRepo.GetByName(ctx, faculty.DepartmentName)
	if err != nil || department == nil {
		return sig
	}
	withDetails, err := s.departmentRepo.GetByID(ctx, department.ID)
	if err != nil || withDetails == nil || withDetails.Details == nil || withDetails.Details.HODFacultyID == "" {
		return sig
	}
	hod, err := s.facultyRepo.GetByID(ctx, withDetails.Details.HODFacultyID)
	if err != nil || hod == nil {
		return sig
	}
	sig.HODName = hod.Name
	return sig
}

func (s *ReportService) facultyRosterSection(ctx context.Context) report.Section {
	const title = "Faculty Roster"
	members, err := s.facultyRepo.List(ctx, querybuilder.FacultyFilters{})
	if err != nil {
		logger.Warn().Err(err).Msg("Faculty roster section degraded")
		return report.UnavailableSection(title, err.Error())
	}

	table := &report.Table{
		Columns: []string{"ID", "Name", "Department", "Designation", "Experience"},
		Widths:  []float64{20, 50, 55, 35, 20},
	}
	doctorates := 0
	for _, m := range members {
		experience := ""
		if m.ExperienceYears > 0 {
			experience = fmt.Sprintf("%d yrs", m.ExperienceYears)
		}
		table.Rows = append(table.Rows, []string{
			m.ID, m.Name, m.DepartmentName, m.Designation, experience})
		if m.Degree == "Ph.D" || m.Degree == "PhD" {
			doctorates++
		}
	}
	return report.OkSection(title, table,
		report.Stat{Label: "Total Faculty", Value: strconv.Itoa(len(members))},
		report.Stat{Label: "Doctorate Share", Value: report.Percent(float64(doctorates), float64(len(members)))})
}

func (s *ReportService) studentStrengthSection(ctx context.Context) report.Section {
	const title = "Student Strength by Department"
	departments, err := s.departmentRepo.List(ctx, querybuilder.DepartmentFilters{})
	if err != nil {
		logger.Warn().Err(err).Msg("Student strength section degraded")
		return report.UnavailableSection(title, err.Error())
	}

	table := &report.Table{
		Columns: []string{"Department", "Code", "Students", "Faculty", "Head of Department"},
		Widths:  []float64{60, 20, 25, 25, 50},
	}
	totalStudents := 0
	for _, d := range departments {
		table.Rows = append(table.Rows, []string{
			d.Name, d.Code, strconv.Itoa(d.StudentCount), strconv.Itoa(d.FacultyCount), d.HODName})
		totalStudents += d.StudentCount
	}
	return report.OkSection(title, table,
		report.Stat{Label: "Total Departments", Value: strconv.Itoa(len(departments))},
		report.Stat{Label: "Total Students", Value: strconv.Itoa(totalStudents)})
}

func (s *ReportService) researchSection(ctx context.Context) report.Section {
	const title = "Research Output"
	publications, err := s.publicationRepo.ListAll(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Research section degraded")
		return report.UnavailableSection(title, err.Error())
	}

	table := &report.Table{
		Columns: []string{"Faculty", "Title", "Journal", "Year", "Citations"},
		Widths:  []float64{20, 75, 45, 20, 20},
	}
	totalCitations := 0
	for _, p := range publications {
		table.Rows = append(table.Rows, []string{
			p.FacultyID, p.Title, p.Journal, strconv.Itoa(p.Year), strconv.Itoa(p.CitationCount)})
		totalCitations += p.CitationCount
	}
	return report.OkSection(title, table,
		report.Stat{Label: "Total Publications", Value: strconv.Itoa(len(publications))},
		report.Stat{Label: "Total Citations", Value: strconv.Itoa(totalCitations)})
}

func (s *ReportService) awardSummarySection(ctx context.Context) report.Section {
	const title = "Awards and Recognitions"
	awards, err := s.awardRepo.ListAll(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Award summary section degraded")
		return report.UnavailableSection(title, err.Error())
	}

	table := &report.Table{
		Columns: []string{"Faculty", "Title", "Issued By", "Date", "Prize"},
		Widths:  []float64{20, 60, 45, 25, 30},
	}
	totalPrize := 0.0
	for _, a := range awards {
		table.Rows = append(table.Rows, []string{
			a.FacultyID, a.Title, a.IssuedBy, a.AwardedOn.Format("02 Jan 2006"),
			report.Currency(a.PrizeAmount, s.currencyCode)})
		totalPrize += a.PrizeAmount
	}
	return report.OkSection(title, table,
		report.Stat{Label: "Total Awards", Value: strconv.Itoa(len(awards))},
		report.Stat{Label: "Total Prize Money", Value: report.Currency(totalPrize, s.currencyCode)})
}

func encodeResponse(content []byte, pages []string, fileName string) *dto.ReportResponse {
	return &dto.ReportResponse{
		FileName: fileName,
		MimeType: "application/pdf",
		Content:  base64.StdEncoding.EncodeToString(content),
		Pages:    pages,
	}
}
