package models

// TranscriptionData is the payload returned by the transcription
// service for one piece of media.
type TranscriptionData struct {
	Text     string              `json:"text"`
	Segments []TranscriptSegment `json:"segments"`
}

// TranscriptSegment is a single timed segment of a transcription.
type TranscriptSegment struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}
