// Package utils
package utils

import "testing"

func ExampleStrToInt() {
	StrToInt("1234", 0)
}

func TestStrToInt(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue int
		expected     int
	}{
		{"1", 0, 1},
		{" 42 ", 0, 42},
		{"4654132", 1, 4654132},
		{"ABCD", 0, 0},
		{"ABCD", 100, 100},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := StrToInt(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("StrToInt(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestStrToInt: %d pass, %d fail", pass, fail)
}

func TestStrToUint(t *testing.T) {
	tests := []struct {
		input    string
		expected uint
		ok       bool
	}{
		{"7", 7, true},
		{" 12\n", 12, true},
		{"0", 0, true},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result, ok := StrToUint(test.input)
		if result != test.expected || ok != test.ok {
			fail++
			t.Errorf("StrToUint(%q) = (%v, %v); expected (%v, %v)", test.input, result, ok, test.expected, test.ok)
			continue
		}
		pass++
	}
	t.Logf("TestStrToUint: %d pass, %d fail", pass, fail)
}
