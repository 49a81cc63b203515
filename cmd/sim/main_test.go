package main

import "testing"

func TestRun(t *testing.T) {
	cases := []struct {
		name    string
		level   string
		script  string
		wantErr bool
	}{
		{"ledge_demo", "arena", "ledge_demo", false},
		{"walk_and_combo", "arena", "walk_and_combo", false},
		{"missing_script", "arena", "nope", true},
		{"missing_level", "nowhere", "ledge_demo", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(tc.level, tc.script, "", 120, true, false)
			if (err != nil) != tc.wantErr {
				t.Fatalf("run() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
