package validation

import (
	"go-bidtrack-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("bid_origin", BidOrigin)
	_ = v.RegisterValidation("interview_type", InterviewType)
	_ = v.RegisterValidation("rejection_reason", RejectionReason)
}

// BidOrigin validates against the known bid origins
func BidOrigin(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", domain.BidOriginLinkedIn, domain.BidOriginBid:
		return true
	}
	return false
}

// InterviewType validates against the known interview stages
func InterviewType(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	for _, known := range domain.InterviewTypes {
		if val == known {
			return true
		}
	}
	return false
}

// RejectionReason validates against the known rejection reasons
func RejectionReason(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", domain.RejectionUnsatisfiedResume, domain.RejectionRoleClosed, domain.RejectionAutoRejected:
		return true
	}
	return false
}
