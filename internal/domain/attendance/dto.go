package attendance

import "time"

type AttendanceResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Date         string  `json:"date"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Status       string  `json:"status"`
	TotalHours   *string `json:"total_hours"`
}

// ToResponse renders a record with timestamps in loc.
func ToResponse(a Attendance, loc *time.Location) AttendanceResponse {
	resp := AttendanceResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Date:        a.Date,
		CheckInTime: a.CheckInTime.In(loc).Format(time.RFC3339),
		Status:      string(a.Status),
	}
	if a.CheckOutTime != nil {
		out := a.CheckOutTime.In(loc).Format(time.RFC3339)
		resp.CheckOutTime = &out
	}
	if a.TotalHours != nil {
		hours := a.TotalHours.StringFixed(2)
		resp.TotalHours = &hours
	}
	return resp
}

func ToResponses(records []Attendance, loc *time.Location) []AttendanceResponse {
	resp := make([]AttendanceResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, ToResponse(r, loc))
	}
	return resp
}
