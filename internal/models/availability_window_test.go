package models

import (
	"reflect"
	"testing"
)

func TestBoxList(t *testing.T) {
	cases := []struct {
		boxes string
		want  []int
	}{
		{"1,3,4", []int{1, 3, 4}},
		{" 2 , 5 ", []int{2, 5}},
		{"7", []int{7}},
		{"1,x,3", []int{1, 3}},
		{"0,-1,2", []int{2}},
		{"", []int{}},
	}

	for _, tc := range cases {
		w := AvailabilityWindow{Boxes: tc.boxes}
		if got := w.BoxList(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("BoxList(%q) = %v, want %v", tc.boxes, got, tc.want)
		}
	}
}
