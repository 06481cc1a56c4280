package dto

// CastVoteDTO for voting on a question or an answer. The pointer keeps
// "missing" distinguishable from zero; oneof pins the value to exactly
// +1 or -1. A non-numeric JSON value already fails the bind itself.
type CastVoteDTO struct {
	Vote *int `json:"vote" binding:"required,oneof=1 -1"`
}
