package events

const (
	SubjectPredictionScored   = "screen.prediction.scored"
	SubjectPredictionRejected = "screen.prediction.rejected"

	StreamName   = "SCREENER_EVENTS"
	StreamMaxAge = "168h" // 7 days
)
