package model

import (
	"encoding/json"
	"errors"
	"testing"
)

// ============================================================================
// Field Validator Tests
// ============================================================================

func TestValidateAge_Bounds(t *testing.T) {
	t.Parallel()

	cases := map[int]bool{
		7:  false,
		8:  true,
		12: true,
		18: true,
		19: false,
		-1: false,
	}
	for age, ok := range cases {
		err := ValidateAge(age)
		if ok && err != nil {
			t.Errorf("age %d: expected valid, got %v", age, err)
		}
		if !ok && !errors.Is(err, ErrAgeOutOfRange) {
			t.Errorf("age %d: expected ErrAgeOutOfRange, got %v", age, err)
		}
	}
}

func TestValidateTime_Bounds(t *testing.T) {
	t.Parallel()

	cases := map[int]bool{
		-1: false,
		0:  true,
		9:  true,
		23: true,
		24: false,
	}
	for hour, ok := range cases {
		err := ValidateTime(hour)
		if ok && err != nil {
			t.Errorf("time %d: expected valid, got %v", hour, err)
		}
		if !ok && !errors.Is(err, ErrTimeOutOfRange) {
			t.Errorf("time %d: expected ErrTimeOutOfRange, got %v", hour, err)
		}
	}
}

func TestValidateName_RejectsBlank(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "   ", "\t"} {
		if err := ValidateName(name); !errors.Is(err, ErrNameRequired) {
			t.Errorf("name %q: expected ErrNameRequired, got %v", name, err)
		}
	}
	if err := ValidateName("Ana"); err != nil {
		t.Errorf("expected valid name, got %v", err)
	}
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestNewCamper_Valid(t *testing.T) {
	t.Parallel()

	c, err := NewCamper("Ana", 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Ana" || c.Age != 12 {
		t.Errorf("unexpected camper %+v", c)
	}
}

func TestNewCamper_CollectsAllFieldErrors(t *testing.T) {
	t.Parallel()

	_, err := NewCamper("", 25)

	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	if len(fe) != 2 || fe[0].Field != "name" || fe[1].Field != "age" {
		t.Errorf("expected name and age errors, got %v", fe)
	}
}

func TestNewSignup_RejectsOutOfRangeTime(t *testing.T) {
	t.Parallel()

	if _, err := NewSignup(24, 1, 1); err == nil {
		t.Error("expected error for time 24")
	}
	s, err := NewSignup(0, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ActivityID != 2 || s.CamperID != 3 {
		t.Errorf("unexpected signup %+v", s)
	}
}

func TestNewActivity_RequiresName(t *testing.T) {
	t.Parallel()

	if _, err := NewActivity("", 3); err == nil {
		t.Error("expected error for empty activity name")
	}
	a, err := NewActivity("Archery", -4)
	if err != nil {
		t.Fatalf("difficulty is unconstrained, got %v", err)
	}
	if a.Difficulty != -4 {
		t.Errorf("expected difficulty -4, got %d", a.Difficulty)
	}
}

func TestCreateCamperRequest_Build_MissingFields(t *testing.T) {
	t.Parallel()

	req := &CreateCamperRequest{}
	_, err := req.Build()

	var fe FieldErrors
	if !errors.As(err, &fe) || len(fe) != 2 {
		t.Fatalf("expected two missing-field errors, got %v", err)
	}
}

func TestCreateSignupRequest_Build_MissingCamper(t *testing.T) {
	t.Parallel()

	hour := 9
	activityID := int64(1)
	req := &CreateSignupRequest{Time: &hour, ActivityID: &activityID}
	_, err := req.Build()

	var fe FieldErrors
	if !errors.As(err, &fe) || len(fe) != 1 || fe[0].Field != "camper_id" {
		t.Fatalf("expected camper_id error, got %v", err)
	}
}

// ============================================================================
// CamperPatch Tests
// ============================================================================

func patchFromJSON(t *testing.T, body string) CamperPatch {
	t.Helper()
	var p CamperPatch
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("bad patch body: %v", err)
	}
	return p
}

func TestCamperPatch_ApplyTo_UpdatesAllowedFields(t *testing.T) {
	t.Parallel()

	orig := &Camper{ID: 1, Name: "Ana", Age: 12}
	updated, err := patchFromJSON(t, `{"name":"Bea","age":15}`).ApplyTo(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != 1 || updated.Name != "Bea" || updated.Age != 15 {
		t.Errorf("unexpected update %+v", updated)
	}
	if orig.Name != "Ana" || orig.Age != 12 {
		t.Errorf("original must not change, got %+v", orig)
	}
}

func TestCamperPatch_ApplyTo_RejectsInvalidValueWithoutPartialWrite(t *testing.T) {
	t.Parallel()

	orig := &Camper{ID: 1, Name: "Ana", Age: 12}
	updated, err := patchFromJSON(t, `{"name":"Bea","age":30}`).ApplyTo(orig)
	if err == nil {
		t.Fatalf("expected error, got %+v", updated)
	}
	if orig.Name != "Ana" {
		t.Errorf("original must not change, got %+v", orig)
	}
}

func TestCamperPatch_ApplyTo_RejectsUnknownAndImmutableFields(t *testing.T) {
	t.Parallel()

	orig := &Camper{ID: 1, Name: "Ana", Age: 12}
	for _, body := range []string{`{"nickname":"A"}`, `{"id":7}`, `{"signups":[]}`} {
		_, err := patchFromJSON(t, body).ApplyTo(orig)
		var fe FieldErrors
		if !errors.As(err, &fe) || fe[0].Message != ErrFieldNotAllowed.Error() {
			t.Errorf("%s: expected not-allowed error, got %v", body, err)
		}
	}
}

func TestCamperPatch_ApplyTo_RejectsWrongTypes(t *testing.T) {
	t.Parallel()

	orig := &Camper{ID: 1, Name: "Ana", Age: 12}
	for _, body := range []string{`{"age":"12"}`, `{"age":12.5}`, `{"name":null}`, `{"name":5}`} {
		if _, err := patchFromJSON(t, body).ApplyTo(orig); err == nil {
			t.Errorf("%s: expected type error", body)
		}
	}
}

func TestCamperPatch_ApplyTo_EmptyPatchIsNoop(t *testing.T) {
	t.Parallel()

	orig := &Camper{ID: 1, Name: "Ana", Age: 12}
	updated, err := CamperPatch{}.ApplyTo(orig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *updated != *orig {
		t.Errorf("expected unchanged camper, got %+v", updated)
	}
}
