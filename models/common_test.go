package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestReleaseDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"Day Precision", `"2020-03-13"`, time.Date(2020, 3, 13, 0, 0, 0, 0, time.UTC)},
		{"Month Precision", `"2020-03"`, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"Year Precision", `"2020"`, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Unknown", `"0000"`, time.Time{}},
		{"Empty", `""`, time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d ReleaseDate
			if err := json.Unmarshal([]byte(tc.in), &d); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !d.Time.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, d.Time)
			}
		})
	}

	t.Run("Rejects Garbage", func(t *testing.T) {
		var d ReleaseDate
		if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
			t.Error("expected error for unparseable date")
		}
	})

	t.Run("Marshal", func(t *testing.T) {
		d := ReleaseDate{Time: time.Date(2020, 3, 13, 0, 0, 0, 0, time.UTC)}
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(data) != `"2020-03-13"` {
			t.Errorf("unexpected payload: %s", data)
		}

		data, err = json.Marshal(ReleaseDate{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(data) != `"0000"` {
			t.Errorf("unexpected payload for zero date: %s", data)
		}
	})
}
