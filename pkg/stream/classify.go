package stream

import (
	"fmt"
	"time"
)

// CloseReason classifies why a stream session ended without success.
type CloseReason string

const (
	// ReasonServerReported means the server sent an error frame and never
	// followed it with a complete frame.
	ReasonServerReported CloseReason = "server_reported"

	// ReasonEarlyClose means the stream dropped within the first seconds,
	// which usually points at a server-side failure.
	ReasonEarlyClose CloseReason = "early_close"

	// ReasonShortTimeout means the elapsed time lines up with the short
	// platform request-timeout limit (~10s).
	ReasonShortTimeout CloseReason = "short_timeout"

	// ReasonLongTimeout means the elapsed time lines up with the long
	// platform request-timeout limit (~60s).
	ReasonLongTimeout CloseReason = "long_timeout"

	// ReasonInterrupted covers everything else: the stream dropped at a time
	// that matches no known limit.
	ReasonInterrupted CloseReason = "interrupted"
)

// CloseError is the terminal failure of a stream session.
type CloseError struct {
	Reason  CloseReason
	Message string
	Elapsed time.Duration
}

func (e *CloseError) Error() string {
	return "stream closed: " + e.Message
}

// classifyPrematureClose guesses why a stream ended with neither a complete
// nor an error frame, from nothing but the measured session duration. The
// buckets line up with the request-timeout limits of common hosting
// platforms. This cannot know the true cause of the drop — treat the message
// as a UX hint, not a diagnosis.
func classifyPrematureClose(elapsed time.Duration) (CloseReason, string) {
	secs := elapsed.Seconds()

	switch {
	case secs >= 9 && secs <= 12:
		return ReasonShortTimeout, "the request may have timed out at the platform's short (10s) limit"
	case secs < 15:
		return ReasonEarlyClose, "the stream closed unexpectedly, likely a server error"
	case secs >= 55 && secs <= 65:
		return ReasonLongTimeout, "the request may have timed out at the platform's long (60s) limit"
	default:
		return ReasonInterrupted, fmt.Sprintf("the stream was interrupted after %d seconds", int(secs))
	}
}
