package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/meetmind-team/meetmind-backend/errors"
	meetingdto "github.com/meetmind-team/meetmind-backend/internal/adapter/dto/meeting"
	"github.com/meetmind-team/meetmind-backend/internal/usecase/transcription"
)

// Meeting handles the transcription pipeline endpoints.
type Meeting struct {
	svc    transcription.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc transcription.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// TranscribeAndSummarize accepts a multipart audio upload and runs it
// through the pipeline in a single synchronous round trip.
func (h *Meeting) TranscribeAndSummarize(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("file is required"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrUploadFailed(err))
	}
	defer src.Close()

	result, err := h.svc.TranscribeAndSummarize(c.Request().Context(), fileHeader.Filename, src)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, meetingdto.TranscriptionResponse{
		Transcript: result.Transcript,
		Summary:    result.Summary,
	})
}

// ListMeetings returns the most recent completed meetings, newest first.
func (h *Meeting) ListMeetings(c echo.Context) error {
	meetings, err := h.svc.ListRecentMeetings(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out := make([]meetingdto.CompletedMeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, meetingdto.NewCompletedMeetingResponse(m))
	}
	return c.JSON(http.StatusOK, out)
}
