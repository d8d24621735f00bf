package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	"github.com/visadesk/visa_desk_app/internal/core/domain"
	portsrepo "github.com/visadesk/visa_desk_app/internal/core/ports/repositories"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/core/visa"
	"github.com/visadesk/visa_desk_app/internal/dto"
)

// rosterService implements the HR employee table: filter, sort, then paginate
// over the full profile set. Derived statuses come from the visa engine.
type rosterService struct {
	BaseService
	profileRepo portsrepo.ProfileRepository
}

// NewRosterService creates a new roster service.
func NewRosterService(profileRepo portsrepo.ProfileRepository) portssvc.RosterSvcFacade {
	return &rosterService{profileRepo: profileRepo}
}

var _ portssvc.RosterSvcFacade = (*rosterService)(nil)

// visaEndOrSentinel treats a missing visa end date as epoch zero so both sort
// directions order absent dates as oldest, instead of comparing against nil.
func visaEndOrSentinel(p domain.EmployeeProfile) time.Time {
	if p.VisaEndDate == nil {
		return time.Unix(0, 0).UTC()
	}
	return *p.VisaEndDate
}

func (s *rosterService) ListEmployees(ctx context.Context, auth domain.AuthContext, params dto.ListEmployeesParams) (*dto.ListEmployeesResponse, error) {
	if !auth.IsHR() {
		return nil, fmt.Errorf("only HR may list employees: %w", apperrors.ErrForbidden)
	}

	profiles, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employee profiles")
		return nil, err
	}

	filtered := filterProfiles(profiles, params, time.Now())
	sortProfiles(filtered, params.Sort)

	total := len(filtered)
	filtered = paginate(filtered, params.Limit, params.Offset)

	rows := make([]dto.EmployeeRowResponse, len(filtered))
	for i := range filtered {
		rows[i] = dto.EmployeeRowResponse{
			Profile:   *buildVisaStatusResponse(&filtered[i]),
			Title:     filtered[i].Title,
			CreatedAt: filtered[i].CreatedAt,
		}
	}

	s.LogDebug(ctx, "Employees listed", slog.Int("total", total), slog.Int("returned", len(rows)))
	return &dto.ListEmployeesResponse{Employees: rows, Total: total}, nil
}

func filterProfiles(profiles []domain.EmployeeProfile, params dto.ListEmployeesParams, now time.Time) []domain.EmployeeProfile {
	search := strings.ToLower(strings.TrimSpace(params.Search))

	// last7/last30 are recency windows over account creation, not orderings.
	var windowStart time.Time
	switch params.Sort {
	case "last7":
		windowStart = now.AddDate(0, 0, -7)
	case "last30":
		windowStart = now.AddDate(0, 0, -30)
	}

	out := make([]domain.EmployeeProfile, 0, len(profiles))
	for _, p := range profiles {
		if params.Title != "" && !strings.EqualFold(p.Title, params.Title) {
			continue
		}
		if params.VisaClass != "" && string(p.Visa.VisaClass) != params.VisaClass {
			continue
		}
		if params.OverallStatus != "" && string(visa.OverallStatus(p.Visa)) != params.OverallStatus {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Email), search) {
			continue
		}
		if params.CreatedAfter != nil && p.CreatedAt.Before(*params.CreatedAfter) {
			continue
		}
		if params.CreatedBefore != nil && p.CreatedAt.After(*params.CreatedBefore) {
			continue
		}
		if !windowStart.IsZero() && p.CreatedAt.Before(windowStart) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sortProfiles(profiles []domain.EmployeeProfile, mode string) {
	switch mode {
	case "endSoon":
		sort.SliceStable(profiles, func(i, j int) bool {
			return visaEndOrSentinel(profiles[i]).Before(visaEndOrSentinel(profiles[j]))
		})
	case "endLate":
		sort.SliceStable(profiles, func(i, j int) bool {
			return visaEndOrSentinel(profiles[i]).After(visaEndOrSentinel(profiles[j]))
		})
	default:
		// last7/last30 and the bare list show newest accounts first.
		sort.SliceStable(profiles, func(i, j int) bool {
			return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
		})
	}
}

// paginate applies limit/offset strictly after filtering and sorting.
// A zero limit returns the full remainder.
func paginate(profiles []domain.EmployeeProfile, limit, offset int) []domain.EmployeeProfile {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(profiles) {
		return nil
	}
	profiles = profiles[offset:]
	if limit > 0 && limit < len(profiles) {
		profiles = profiles[:limit]
	}
	return profiles
}
