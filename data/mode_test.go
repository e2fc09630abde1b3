package data

import "testing"

func TestDeriveMirrorMode(t *testing.T) {
	tests := []struct {
		configured bool
		enabled    bool
		expected   MirrorMode
	}{
		{configured: false, enabled: false, expected: MirrorDisabled},
		{configured: false, enabled: true, expected: MirrorDisabled},
		{configured: true, enabled: false, expected: MirrorLocalOnly},
		{configured: true, enabled: true, expected: MirrorLocalAndRemote},
	}

	for _, tt := range tests {
		if got := DeriveMirrorMode(tt.configured, tt.enabled); got != tt.expected {
			t.Errorf("DeriveMirrorMode(%t, %t): expected %s, got %s", tt.configured, tt.enabled, tt.expected, got)
		}
	}
}

func TestParseMirrorPolicy(t *testing.T) {
	tests := map[string]MirrorPolicy{
		"":        PolicyIgnore,
		"ignore":  PolicyIgnore,
		"Journal": PolicyJournal,
		" strict": PolicyStrict,
	}
	for input, expected := range tests {
		got, err := ParseMirrorPolicy(input)
		if err != nil {
			t.Errorf("ParseMirrorPolicy(%q) failed: %v", input, err)
			continue
		}
		if got != expected {
			t.Errorf("ParseMirrorPolicy(%q): expected %s, got %s", input, expected, got)
		}
	}

	if _, err := ParseMirrorPolicy("retry"); err == nil {
		t.Errorf("Expected error for unknown policy")
	}
}
