package response

import (
	"time"

	"membership-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MemberResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Username     string    `json:"username"`
	ProfilePhoto *string   `json:"profile_photo,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromMemberView(v *queries.MemberView) *MemberResponse {
	var resp MemberResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromMemberViews(views []*queries.MemberView) []*MemberResponse {
	responses := make([]*MemberResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromMemberView(v))
	}
	return responses
}
