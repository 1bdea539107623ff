package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// DateFormat is the format for date query parameters
const DateFormat = "2006-01-02"
