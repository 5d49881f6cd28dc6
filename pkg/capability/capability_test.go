package capability

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		provider       string
		model          string
		wantVision     bool
		wantNativeDocs bool
	}{
		{"gemini", "gemini-2.5-flash", true, true},
		{"gemini", "gemini-1.5-pro", true, true},
		{"claude", "claude-3-5-sonnet-20240620", true, false},
		{"openai", "gpt-4o", true, false},
		{"openai", "gpt-4-turbo", true, false},
		{"openai", "gpt-4-vision-preview", true, false},
		{"openai", "gpt-4", false, false},
		{"openai", "gpt-3.5-turbo", false, false},
		{"custom", "qwen-vl-max", true, false},
		{"custom", "llava-1.6", true, false},
		{"deepseek", "deepseek-chat", false, false},
		{"deepseek", "deepseek-vl", false, false},
		{"custom", "Claude-Instant", true, false},
		{"", "", false, false},
		{"unknown", "mystery-model", false, false},
	}

	for _, test := range tests {
		got := Classify(test.provider, test.model)

		if got.SupportsVision != test.wantVision {
			t.Errorf("Classify(%q, %q).SupportsVision = %v, want %v",
				test.provider, test.model, got.SupportsVision, test.wantVision)
		}
		if got.SupportsNativeDocument != test.wantNativeDocs {
			t.Errorf("Classify(%q, %q).SupportsNativeDocument = %v, want %v",
				test.provider, test.model, got.SupportsNativeDocument, test.wantNativeDocs)
		}
	}
}

func TestClassifyIsPure(t *testing.T) {
	first := Classify("gemini", "gemini-2.5-flash")
	for i := 0; i < 10; i++ {
		if got := Classify("gemini", "gemini-2.5-flash"); got != first {
			t.Fatalf("Classify returned %v on repeat call, want %v", got, first)
		}
	}
}
