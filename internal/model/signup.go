package model

// Signup records that a camper is registered for an activity at a given hour.
// It is the join row of the camper/activity many-to-many relationship.
type Signup struct {
	ID         int64
	Time       int
	ActivityID int64
	CamperID   int64

	// Populated by repository joins
	Activity *Activity
	Camper   *Camper
}

// NewSignup builds a signup after validating the hour. Reference integrity is
// checked by the persistence layer.
func NewSignup(hour int, activityID, camperID int64) (*Signup, error) {
	if err := ValidateTime(hour); err != nil {
		return nil, FieldErrors{{Field: "time", Message: err.Error()}}
	}
	return &Signup{Time: hour, ActivityID: activityID, CamperID: camperID}, nil
}

// CreateSignupRequest is the body of POST /signups
type CreateSignupRequest struct {
	Time       *int   `json:"time"`
	ActivityID *int64 `json:"activity_id"`
	CamperID   *int64 `json:"camper_id"`
}

// Build validates the request and returns the signup to insert.
func (r *CreateSignupRequest) Build() (*Signup, error) {
	var errs FieldErrors
	if r.Time == nil {
		errs.add("time", ErrFieldRequired)
	}
	if r.ActivityID == nil {
		errs.add("activity_id", ErrFieldRequired)
	}
	if r.CamperID == nil {
		errs.add("camper_id", ErrFieldRequired)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return NewSignup(*r.Time, *r.ActivityID, *r.CamperID)
}
