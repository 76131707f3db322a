package transcription

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/meetmind-team/meetmind-backend/errors"
	"github.com/meetmind-team/meetmind-backend/internal/domain/entities"
	"github.com/meetmind-team/meetmind-backend/internal/domain/repositories"
)

// recentMeetingsLimit bounds the listing window.
const recentMeetingsLimit = 20

// summaryPrompt is the fixed prompt shape sent to the summarization engine.
const summaryPrompt = "Summarize this transcript and list all action items:\n---\n%s"

// Transcriber maps an audio file on disk to plain text. It may return empty
// output for unusable audio.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Summarizer maps a prompt to formatted summary text. Stateless per call.
type Summarizer interface {
	GenerateSummary(ctx context.Context, prompt string) (string, error)
}

// Result is the outcome of a processed upload.
type Result struct {
	Transcript string
	Summary    string
}

// Service owns the completed meeting lifecycle: receive upload, transcribe,
// summarize, persist, discard temp data.
type Service interface {
	TranscribeAndSummarize(ctx context.Context, filename string, audio io.Reader) (*Result, error)
	ListRecentMeetings(ctx context.Context) ([]*entities.CompletedMeeting, error)
}

type transcriptionService struct {
	completedRepo repositories.CompletedMeetingRepository
	transcriber   Transcriber
	summarizer    Summarizer
	tempDir       string
	logger        *zap.Logger
}

// NewService constructs a transcription service. tempDir is where uploads
// are spooled while the engines run.
func NewService(
	completedRepo repositories.CompletedMeetingRepository,
	transcriber Transcriber,
	summarizer Summarizer,
	tempDir string,
	logger *zap.Logger,
) Service {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &transcriptionService{
		completedRepo: completedRepo,
		transcriber:   transcriber,
		summarizer:    summarizer,
		tempDir:       tempDir,
		logger:        logger,
	}
}

// TranscribeAndSummarize runs the upload through the full pipeline. The
// temp file name embeds a fresh UUID so concurrent uploads never collide,
// and keeps the original extension because the transcription engine picks
// its decoder from it. The deferred remove covers every exit path.
func (s *transcriptionService) TranscribeAndSummarize(ctx context.Context, filename string, audio io.Reader) (*Result, error) {
	base := filepath.Base(filename)
	tempPath := filepath.Join(s.tempDir, fmt.Sprintf("%s_%s", uuid.New().String(), base))

	out, err := os.Create(tempPath)
	if err != nil {
		return nil, apperrors.ErrUploadFailed(err)
	}
	defer func() {
		if rmErr := os.Remove(tempPath); rmErr != nil && s.logger != nil {
			s.logger.Warn("failed to remove temp upload",
				zap.String("path", tempPath),
				zap.Error(rmErr),
			)
		}
	}()

	if _, err := io.Copy(out, audio); err != nil {
		out.Close()
		return nil, apperrors.ErrUploadFailed(err)
	}
	if err := out.Close(); err != nil {
		return nil, apperrors.ErrUploadFailed(err)
	}

	transcript, err := s.transcriber.Transcribe(ctx, tempPath)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("transcription engine failed",
				zap.String("filename", base),
				zap.String("temp_path", tempPath),
				zap.Error(err),
			)
		}
		return nil, apperrors.ErrTranscriptionFailed(err)
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, apperrors.ErrUnusableAudio()
	}

	summary, err := s.summarizer.GenerateSummary(ctx, fmt.Sprintf(summaryPrompt, transcript))
	if err != nil {
		if s.logger != nil {
			s.logger.Error("summarization engine failed",
				zap.String("filename", base),
				zap.Int("transcript_length", len(transcript)),
				zap.Error(err),
			)
		}
		return nil, apperrors.ErrSummaryFailed(err)
	}

	// One atomic insert, only after both engines succeeded. A transcript
	// without a summary is never stored.
	meeting := entities.NewCompletedMeeting(base, transcript, summary)
	if err := s.completedRepo.Create(ctx, meeting); err != nil {
		if s.logger != nil {
			s.logger.Error("failed to persist completed meeting",
				zap.String("filename", base),
				zap.Error(err),
			)
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("upload processed",
			zap.String("meeting_id", meeting.ID.String()),
			zap.String("filename", base),
			zap.Int("transcript_length", len(transcript)),
			zap.Int("summary_length", len(summary)),
		)
	}

	return &Result{Transcript: transcript, Summary: summary}, nil
}

// ListRecentMeetings returns the latest completed meetings, newest first.
func (s *transcriptionService) ListRecentMeetings(ctx context.Context) ([]*entities.CompletedMeeting, error) {
	meetings, err := s.completedRepo.ListRecent(ctx, recentMeetingsLimit)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return meetings, nil
}
