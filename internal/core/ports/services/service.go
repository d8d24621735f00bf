package services

// ServiceContainer holds all service facades for handler wiring.
type ServiceContainer struct {
	User       UserSvcFacade
	Visa       VisaSvcFacade
	Roster     RosterSvcFacade
	Onboarding OnboardingSvcFacade
	Files      FileSvcFacade
}
