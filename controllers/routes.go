package controllers

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the dispatch table. The nested mentor/session routes
// alias the flat create handlers; literal segments (session/, user/, mentor/)
// are matched by echo ahead of the generic :id patterns.
func RegisterRoutes(e *echo.Echo, mentors *MentorController, sessions *SessionController, bookings *BookingController) {
	e.GET("/", Root)
	e.GET("/health", Health)

	api := e.Group("/api")

	api.GET("/mentors", mentors.List)
	api.POST("/mentors", mentors.Create)
	api.GET("/mentors/:id", mentors.Get)
	api.PUT("/mentors/:id", mentors.Update)
	api.DELETE("/mentors/:id", mentors.Delete)
	api.POST("/mentors/:id/sessions", sessions.Create)
	api.GET("/mentors/:id/sessions", sessions.ListByMentor)

	api.GET("/sessions", sessions.List)
	api.POST("/sessions", sessions.Create)
	api.GET("/sessions/mentor/:mentorId", sessions.ListByMentor)
	api.GET("/sessions/:id", sessions.Get)
	api.PUT("/sessions/:id", sessions.Update)
	api.DELETE("/sessions/:id", sessions.Delete)
	api.POST("/sessions/:id/bookings", bookings.Create)

	api.GET("/bookings", bookings.List)
	api.POST("/bookings", bookings.Create)
	api.GET("/bookings/session/:sessionId", bookings.ListBySession)
	api.GET("/bookings/user/:userEmail", bookings.ListByUser)
	api.GET("/bookings/:id", bookings.Get)
	api.PUT("/bookings/:id", bookings.Update)
	api.DELETE("/bookings/:id", bookings.Delete)
}
