package common

import (
	"testing"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped: %v", i, v)
		}
	}
}

// ---------- NormalizeSkill ----------

func TestNormalizeSkill(t *testing.T) {
	cases := map[string]string{
		"python":           "Python",
		"machine learning": "Machine Learning",
		"  docker ":        "Docker",
		"REACT":            "React",
		"":                 "",
		"   ":              "",
	}
	for in, want := range cases {
		if got := NormalizeSkill(in); got != want {
			t.Errorf("NormalizeSkill(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitCommaList(t *testing.T) {
	got := SplitCommaList(" go , docker,,  k8s ")
	want := []string{"go", "docker", "k8s"}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: got %q want %q", i, got[i], want[i])
		}
	}
}
