package services

// ServiceContainer aggregates every service the handlers depend on.
type ServiceContainer struct {
	AuthService     AuthService
	ProjectService  ProjectService
	PlannerService  PlannerService
	CareerService   CareerService
	CalendarService CalendarService
	ProfileService  ProfileService
}
