package model

// Activity is a camp activity campers can sign up for.
type Activity struct {
	ID         int64
	Name       string
	Difficulty int
}

// NewActivity builds an activity. Difficulty is unconstrained.
func NewActivity(name string, difficulty int) (*Activity, error) {
	if err := ValidateName(name); err != nil {
		return nil, FieldErrors{{Field: "name", Message: err.Error()}}
	}
	return &Activity{Name: name, Difficulty: difficulty}, nil
}
