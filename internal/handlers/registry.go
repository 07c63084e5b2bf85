package handlers

// AppHandlers aggregates every handler the router registers.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	ProjectHandler  *ProjectHandler
	PlannerHandler  *PlannerHandler
	CareerHandler   *CareerHandler
	CalendarHandler *CalendarHandler
	ProfileHandler  *ProfileHandler
	HealthHandler   *HealthHandler
}
