package rdf

import (
	"reflect"
	"testing"
)

func TestParseLayers(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{name: "empty means all", in: "", want: []int{1, 2, 3, 4, 5}},
		{name: "single", in: "3", want: []int{3}},
		{name: "subset", in: "1,3", want: []int{1, 3}},
		{name: "unordered input sorted", in: "5,2", want: []int{2, 5}},
		{name: "duplicates collapsed", in: "1,1,2", want: []int{1, 2}},
		{name: "spaces tolerated", in: " 1 , 4 ", want: []int{1, 4}},
		{name: "zero rejected", in: "0", wantErr: true},
		{name: "out of range", in: "6", wantErr: true},
		{name: "not a number", in: "one", wantErr: true},
		{name: "only commas", in: ",,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLayers(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLayers(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLayers(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
