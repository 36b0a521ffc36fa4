package models

// Team is the membership and join-request state for exactly one idea.
// A user id appears in at most one of Members and JoinRequests at a time.
type Team struct {
	ID           string   `json:"id" bson:"_id"`
	Name         string   `json:"name" bson:"name"`
	Mission      string   `json:"mission" bson:"mission"`
	IdeaID       string   `json:"ideaId" bson:"ideaId"`
	Members      []string `json:"members" bson:"members"`
	JoinRequests []string `json:"joinRequests" bson:"joinRequests"`
}

// HasMember reports whether userID is a team member.
func (t *Team) HasMember(userID string) bool {
	for _, id := range t.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// HasJoinRequest reports whether userID has a pending join request.
func (t *Team) HasJoinRequest(userID string) bool {
	for _, id := range t.JoinRequests {
		if id == userID {
			return true
		}
	}
	return false
}

// JoinTeamRequest defines the request body for join-request operations.
type JoinTeamRequest struct {
	UserID string `json:"userId" validate:"required"`
}
