package models

import (
	"encoding/json"
	"testing"
)

func TestOptional(t *testing.T) {
	type profile struct {
		Name    string           `json:"name"`
		Email   Optional[string] `json:"email,omitzero"`
		Country Optional[string] `json:"country,omitzero"`
	}

	t.Run("Unmarshal", func(t *testing.T) {
		t.Run("Distinguishes Absent From Null", func(t *testing.T) {
			var p profile
			if err := json.Unmarshal([]byte(`{"name":"ada","email":null}`), &p); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !p.Email.IsSet() {
				t.Error("expected null email to count as supplied")
			}
			if !p.Email.IsNull() {
				t.Error("expected email to be null")
			}
			if p.Country.IsSet() {
				t.Error("expected absent country to stay unset")
			}
		})

		t.Run("Holds A Value", func(t *testing.T) {
			var p profile
			if err := json.Unmarshal([]byte(`{"name":"ada","email":"ada@example.com"}`), &p); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			v, ok := p.Email.Value()
			if !ok {
				t.Fatal("expected email value to be present")
			}
			if v != "ada@example.com" {
				t.Errorf("unexpected value: %s", v)
			}
			if p.Email.IsNull() {
				t.Error("expected value not to read as null")
			}
		})
	})

	t.Run("Marshal", func(t *testing.T) {
		t.Run("Drops Unset Fields", func(t *testing.T) {
			data, err := json.Marshal(profile{Name: "ada"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if string(data) != `{"name":"ada"}` {
				t.Errorf("unexpected payload: %s", data)
			}
		})

		t.Run("Keeps Explicit Null", func(t *testing.T) {
			data, err := json.Marshal(profile{Name: "ada", Email: Null[string]()})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if string(data) != `{"name":"ada","email":null}` {
				t.Errorf("unexpected payload: %s", data)
			}
		})

		t.Run("Round Trips A Value", func(t *testing.T) {
			data, err := json.Marshal(profile{Name: "ada", Email: Some("ada@example.com")})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			var back profile
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if v, _ := back.Email.Value(); v != "ada@example.com" {
				t.Errorf("unexpected value after round trip: %s", v)
			}
		})
	})

	t.Run("Or", func(t *testing.T) {
		if got := Some(7).Or(3); got != 7 {
			t.Errorf("expected held value, got %d", got)
		}
		if got := Null[int]().Or(3); got != 3 {
			t.Errorf("expected fallback for null, got %d", got)
		}
		var unset Optional[int]
		if got := unset.Or(3); got != 3 {
			t.Errorf("expected fallback for unset, got %d", got)
		}
	})

	t.Run("String", func(t *testing.T) {
		var unset Optional[int]
		if unset.String() != "unset" {
			t.Errorf("unexpected representation: %s", unset.String())
		}
		if Null[int]().String() != "null" {
			t.Errorf("unexpected representation: %s", Null[int]().String())
		}
		if Some(42).String() != "42" {
			t.Errorf("unexpected representation: %s", Some(42).String())
		}
	})
}
