package services

import (
	"reflect"
	"testing"
)

func TestInterpretQuery_DistrictDetection(t *testing.T) {
	cases := []struct {
		name         string
		query        string
		wantDistrict string
		wantClean    string
	}{
		{"plain", "best momos in Kohima", "Kohima", "best momos in"},
		{"case insensitive", "pg in dimapur", "Dimapur", "pg in"},
		{"no district", "cheap salon", "", "cheap salon"},
		{"enumeration order wins", "Kohima or Dimapur", "Kohima", "or Dimapur"},
		{"inside word", "mokokchungtown turf", "Mokokchung", "town turf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := InterpretQuery(tc.query)
			if q.District != tc.wantDistrict {
				t.Fatalf("district: expected %q got %q", tc.wantDistrict, q.District)
			}
			if q.Clean != tc.wantClean {
				t.Fatalf("clean: expected %q got %q", tc.wantClean, q.Clean)
			}
		})
	}
}

func TestInterpretQuery_Price(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		wantMax float64
		none    bool
	}{
		{"under", "pg under 500", 500, false},
		{"under with rupee", "pg under ₹500", 500, false},
		{"below", "rooms below 800", 800, false},
		{"less than", "hotel less than 1500", 1500, false},
		{"cheap", "cheap salon", 500, false},
		{"budget", "budget hotel", 500, false},
		{"affordable", "affordable pg", 2000, false},
		{"explicit beats cheap", "cheap pg under 300", 300, false},
		{"no constraint", "good turf", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := InterpretQuery(tc.query)
			if tc.none {
				if q.Price != nil {
					t.Fatalf("expected no price constraint, got %+v", q.Price)
				}
				return
			}
			if q.Price == nil || q.Price.Max == nil {
				t.Fatalf("expected max %v, got %+v", tc.wantMax, q.Price)
			}
			if *q.Price.Max != tc.wantMax {
				t.Fatalf("expected max %v got %v", tc.wantMax, *q.Price.Max)
			}
			if q.Price.Min != nil {
				t.Fatalf("expected no min, got %v", *q.Price.Min)
			}
		})
	}
}

func TestInterpretQuery_Conditions(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"wifi and ac", "pg with wifi and ac", []string{"AC", "WiFi"}},
		{"wi-fi spelling", "hotel wi-fi", []string{"WiFi"}},
		{"non-veg also flags veg", "non-veg restaurant", []string{"non-veg", "veg"}},
		// "pharmacy" contains "ac": the substring table is not tokenized.
		{"24 hour pharmacy", "24 hour pharmacy", []string{"AC", "24 hours"}},
		{"meals", "pg food included", []string{"meals included"}},
		{"substring match is literal", "indoors turf", []string{"indoor"}},
		{"none", "school", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := InterpretQuery(tc.query)
			if !reflect.DeepEqual(q.Conditions, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, q.Conditions)
			}
		})
	}
}

func TestInterpretQuery_Keywords(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"stop words dropped", "best momos in Kohima", []string{"momos"}},
		{"short tokens dropped", "pg in town", []string{"town"}},
		{"duplicates kept", "momos momos", []string{"momos", "momos"}},
		{"generic nouns dropped", "find a good shop near me", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := InterpretQuery(tc.query)
			if !reflect.DeepEqual(q.Keywords, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, q.Keywords)
			}
		})
	}
}

func TestInterpretQuery_NeverFails(t *testing.T) {
	for _, raw := range []string{"", "   ", "₹₹₹", "Tseminyü"} {
		q := InterpretQuery(raw)
		if q.Raw != raw {
			t.Fatalf("raw not preserved for %q", raw)
		}
	}
}
