package response

import "lift-reservation/internal/usecase/queries"

// AvailabilityResponse keys are the slot names.
type AvailabilityResponse struct {
	AM int32 `json:"AM"`
	PM int32 `json:"PM"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{AM: v.AM, PM: v.PM}
}
