package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetmind-team/meetmind-backend/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	reminderHandler *Reminder
	meetingHandler  *Meeting
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, reminderHandler *Reminder, meetingHandler *Meeting) *Router {
	return &Router{
		cfg:             cfg,
		reminderHandler: reminderHandler,
		meetingHandler:  meetingHandler,
	}
}

// Setup configures all application routes. The route prefix is a deployment
// choice ("/api" or none), not a behavioral one.
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	prefix := rt.cfg.Server.RoutePrefix
	if prefix == "/" {
		prefix = ""
	}

	if prefix == "" {
		e.GET("/", rt.root)
	} else {
		e.GET(prefix, rt.root)
	}

	g := e.Group(prefix)
	g.POST("/schedule-reminder", rt.reminderHandler.ScheduleReminder)
	g.POST("/update-meeting-link", rt.reminderHandler.UpdateMeetingLink)
	g.GET("/get-meeting-link/:meetingId", rt.reminderHandler.GetMeetingLink)
	g.POST("/transcribe-and-summarize", rt.meetingHandler.TranscribeAndSummarize)
	g.GET("/meetings", rt.meetingHandler.ListMeetings)
}

// root reports service status
func (rt *Router) root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "MeetMind backend is operational.",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
