package attendance

// TopicAttendance carries live check-in and check-out events for managers.
const TopicAttendance = "attendance"

const (
	EventCheckedIn  = "checked_in"
	EventCheckedOut = "checked_out"
)
