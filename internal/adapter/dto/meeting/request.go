package meeting

// ScheduleReminderRequest is the schedule-reminder request body.
type ScheduleReminderRequest struct {
	Title     string   `json:"title" validate:"required"`
	StartTime string   `json:"startTime" validate:"required"`
	EndTime   string   `json:"endTime"`
	Message   string   `json:"message"`
	Attendees []string `json:"attendees"`
}

// UpdateMeetingLinkRequest is the callback body posted by the automation
// platform once it has created the meeting. hangoutLink is the wire name
// the platform posts back; internally the field is the join link.
type UpdateMeetingLinkRequest struct {
	MeetingID   string `json:"meetingId" validate:"required"`
	HangoutLink string `json:"hangoutLink" validate:"required"`
}
