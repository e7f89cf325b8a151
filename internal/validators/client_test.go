package validators

import "testing"

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"+5491155550000",
		"1155550000",
		"+14155552671",
		"11-5555-0000",
		"+54 9 11 5555 0000",
		"(11) 5555-0000",
	}
	for _, p := range valid {
		if !IsPhoneValid(p) {
			t.Errorf("expected %q to be valid", p)
		}
	}

	invalid := []string{"", "abc", "+0123456", "12", "+54.911.5555.0000"}
	for _, p := range invalid {
		if IsPhoneValid(p) {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestIsDNIValid(t *testing.T) {
	valid := []string{"1234567", "30123456", "30.123.456", " 30123456 "}
	for _, d := range valid {
		if !IsDNIValid(d) {
			t.Errorf("expected %q to be valid", d)
		}
	}

	invalid := []string{"", "123456", "301234567", "3012345a", "30-123-456"}
	for _, d := range invalid {
		if IsDNIValid(d) {
			t.Errorf("expected %q to be invalid", d)
		}
	}
}
