package entity

import "time"

// AttendanceStatusPresent valor por defecto cuando el empleado no envía estado.
const AttendanceStatusPresent = "present"

// Attendance registro de asistencia de un usuario para una fecha. Uno por (usuario, día).
type Attendance struct {
	ID           int64
	UserID       int64
	Date         time.Time // fecha (00:00 UTC)
	Status       string
	CheckInTime  *ClockTime
	CheckOutTime *ClockTime
	CreatedAt    time.Time
}
