package response

import (
	"time"

	"membership-portal/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DuesRecordResponse struct {
	ID          uuid.UUID  `json:"id"`
	MemberID    uuid.UUID  `json:"member_id"`
	Month       string     `json:"month"`
	Year        int        `json:"year"`
	Amount      int64      `json:"amount"`
	IsPaid      bool       `json:"is_paid"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	IBAN        string     `json:"iban"`
}

func FromDuesRecordView(v *queries.DuesRecordView) *DuesRecordResponse {
	var resp DuesRecordResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromDuesRecordViews(views []*queries.DuesRecordView) []*DuesRecordResponse {
	responses := make([]*DuesRecordResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, FromDuesRecordView(v))
	}
	return responses
}
