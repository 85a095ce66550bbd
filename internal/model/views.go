package model

// Serialization views. Each view type only reaches one hop past its root and
// never holds a field leading back to it, so rendering is always acyclic.

// CamperView is the list representation of a camper.
type CamperView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// ActivityView is the list representation of an activity.
type ActivityView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
}

// CamperSignupView is a signup nested under its camper: it carries the
// activity but not the camper again.
type CamperSignupView struct {
	ID         int64        `json:"id"`
	Time       int          `json:"time"`
	ActivityID int64        `json:"activity_id"`
	CamperID   int64        `json:"camper_id"`
	Activity   ActivityView `json:"activity"`
}

// CamperDetailView is the single-camper representation with its signups.
type CamperDetailView struct {
	ID      int64              `json:"id"`
	Name    string             `json:"name"`
	Age     int                `json:"age"`
	Signups []CamperSignupView `json:"signups"`
}

// SignupView is the representation of a created signup with both ends trimmed
// of their own signups.
type SignupView struct {
	ID         int64        `json:"id"`
	Time       int          `json:"time"`
	ActivityID int64        `json:"activity_id"`
	CamperID   int64        `json:"camper_id"`
	Activity   ActivityView `json:"activity"`
	Camper     CamperView   `json:"camper"`
}

// View renders the list representation.
func (c *Camper) View() CamperView {
	return CamperView{ID: c.ID, Name: c.Name, Age: c.Age}
}

// DetailView renders the camper with its signups. Signups without a joined
// activity are rendered with an empty activity object.
func (c *Camper) DetailView(signups []*Signup) CamperDetailView {
	view := CamperDetailView{
		ID:      c.ID,
		Name:    c.Name,
		Age:     c.Age,
		Signups: make([]CamperSignupView, 0, len(signups)),
	}
	for _, s := range signups {
		sv := CamperSignupView{
			ID:         s.ID,
			Time:       s.Time,
			ActivityID: s.ActivityID,
			CamperID:   s.CamperID,
		}
		if s.Activity != nil {
			sv.Activity = s.Activity.View()
		}
		view.Signups = append(view.Signups, sv)
	}
	return view
}

// View renders the list representation.
func (a *Activity) View() ActivityView {
	return ActivityView{ID: a.ID, Name: a.Name, Difficulty: a.Difficulty}
}

// View renders the signup with its activity and camper.
func (s *Signup) View() SignupView {
	view := SignupView{
		ID:         s.ID,
		Time:       s.Time,
		ActivityID: s.ActivityID,
		CamperID:   s.CamperID,
	}
	if s.Activity != nil {
		view.Activity = s.Activity.View()
	}
	if s.Camper != nil {
		view.Camper = s.Camper.View()
	}
	return view
}

// CamperViews renders a list of campers.
func CamperViews(campers []*Camper) []CamperView {
	views := make([]CamperView, 0, len(campers))
	for _, c := range campers {
		views = append(views, c.View())
	}
	return views
}

// ActivityViews renders a list of activities.
func ActivityViews(activities []*Activity) []ActivityView {
	views := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, a.View())
	}
	return views
}
