package mappers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/worksprings/inventory-roi/internal/form"
)

// SubmissionFromJSON decodes a roi.Input document. Missing keys keep their form default.
func SubmissionFromJSON(body io.Reader) (form.Submission, error) {
	sub := form.Defaults()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sub); err != nil {
		if err == io.EOF {
			return form.Submission{}, fmt.Errorf("empty body")
		}
		return form.Submission{}, fmt.Errorf("failed to decode request body: %w", err)
	}

	return sub, nil
}
