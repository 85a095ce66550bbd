// Package model defines the camp domain entities, their field validators and
// the serialization views used by the API.
//
// # Domain Entities
//
//   - Camper: participant with a name and an age between 8 and 18
//   - Activity: camp activity with a name and a difficulty
//   - Signup: join row linking one camper to one activity at an hour (0-23)
//
// # Validation
//
// Entity fields are assigned through constructors and setters that run the
// validators in validation.go, so an invalid value never reaches a repository.
// Partial updates go through CamperPatch, which only knows the fields in its
// allow-list:
//
//	updated, err := model.CamperPatch{"age": json.RawMessage("12")}.ApplyTo(camper)
//
// # Views
//
// Entities are rendered through the view types in views.go. A view embeds at
// most one hop of related data and never a back-reference:
//
//	camper.View()              // {id, name, age}
//	camper.DetailView(signups) // {id, name, age, signups: [{..., activity}]}
//	signup.View()              // {id, time, activity_id, camper_id, activity, camper}
package model
