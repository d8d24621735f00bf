package services

import (
	portsrepo "github.com/visadesk/visa_desk_app/internal/core/ports/repositories"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, docStore portsrepo.DocumentStore, notifier portssvc.NotifierSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.ProfileRepo)
	container.Visa = NewVisaService(repos.ProfileRepo, repos.FileRepo, docStore, notifier)
	container.Roster = NewRosterService(repos.ProfileRepo)
	container.Onboarding = NewOnboardingService(repos.ProfileRepo)
	container.Files = NewFileService(repos.FileRepo, docStore)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.VisaSvcFacade   = (*visaService)(nil)
	_ portssvc.RosterSvcFacade = (*rosterService)(nil)
	_ portssvc.UserSvcFacade   = (*userService)(nil)
)
