package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"jane.doe@example.co.uk",
		"dev+tag@sub.domain.io",
		"  padded@mail.com  ",
	}
	for _, s := range valid {
		assert.True(t, ValidEmail(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing-domain@",
		"@missing-local.com",
		"two@@signs.com",
		"two@signs@domain.com",
		"no-dot-after-at@domain",
		"dot-before@.com",
		"spaces in@local.com",
	}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), "expected %q to be invalid", s)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"+1 (555) 123-4567", // 11 digits with separators
		"+15551234567",
		"5551234567",         // exactly 10
		"555123456789012",    // exactly 15
		"(020) 7946-0958 99", // separators anywhere
	}
	for _, s := range valid {
		assert.True(t, ValidPhone(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"555123456",        // 9 digits
		"5551234567890123", // 16 digits
		"555-CALL-NOW",
		"+1 555 123 456x",
		"++15551234567", // only one leading plus allowed
		"123.456.7890",  // dots are not stripped
	}
	for _, s := range invalid {
		assert.False(t, ValidPhone(s), "expected %q to be invalid", s)
	}
}

func TestParseTechStack(t *testing.T) {
	got := ParseTechStack("Python, Go; React and Node.js")
	assert.Equal(t, []string{"Python", "Go", "React", "Node.js"}, got)
}

func TestParseTechStackDedupesCaseInsensitively(t *testing.T) {
	got := ParseTechStack("Python, python, PYTHON, Go")
	assert.Equal(t, []string{"Python", "Go"}, got)
}

func TestParseTechStackKeepsWordsContainingAnd(t *testing.T) {
	// "and" only splits as a standalone word
	got := ParseTechStack("Pandas and Android")
	assert.Equal(t, []string{"Pandas", "Android"}, got)
}

func TestParseTechStackNewlinesAndEmptyTokens(t *testing.T) {
	got := ParseTechStack("Docker\nKubernetes,, ;\n")
	assert.Equal(t, []string{"Docker", "Kubernetes"}, got)

	assert.Empty(t, ParseTechStack(""))
	assert.Empty(t, ParseTechStack("  ,  ;  "))
}
