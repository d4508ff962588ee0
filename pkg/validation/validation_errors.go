package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Link":               "Job link",
	"Company":            "Company",
	"Client":             "Client",
	"Role":               "Role",
	"JobDescriptionPath": "Job description file",
	"ResumePath":         "Resume file",
	"ResumeID":           "Resume",
	"Origin":             "Origin",
	"Recruiter":          "Recruiter",
	"Type":               "Interview type",
	"Attendees":          "Attendees",
	"Base":               "Interview base",
	"OriginalBidID":      "Original bid",
	"NewResumePath":      "New resume file",
}

// Format turns validator errors into one readable message; other errors
// pass through unchanged.
func Format(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		label := FieldLabels[fieldErr.Field()]
		if label == "" {
			label = fieldErr.Field()
		}
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", label))
		case "bid_origin", "interview_type", "rejection_reason":
			messages = append(messages, fmt.Sprintf("%s has an unknown value", label))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid (%s)", label, fieldErr.Tag()))
		}
	}
	return strings.Join(messages, "; ")
}
