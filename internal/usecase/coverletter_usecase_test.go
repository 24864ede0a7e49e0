package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverLetters_Generate(t *testing.T) {
	uc := NewCoverLettersUsecase()

	letter, err := uc.Generate(CoverLetterInput{
		JobTitle:   "Golang Engineer",
		Company:    "BharatPe",
		Skills:     []string{"Go", "gRPC", "PostgreSQL", "Kubernetes", "Docker"},
		Experience: "4 years",
		Name:       "Priya",
	})
	require.NoError(t, err)

	assert.Contains(t, letter, "Dear Hiring Manager at BharatPe,")
	assert.Contains(t, letter, "the Golang Engineer position at BharatPe")
	assert.Contains(t, letter, "With 4 years of hands-on industry experience")
	// Only the first four skills make the highlights list.
	assert.Contains(t, letter, "Go, gRPC, PostgreSQL, Kubernetes")
	assert.NotContains(t, letter, "Docker")
	assert.Contains(t, letter, "systems using Go,")
	assert.Contains(t, letter, "Warm regards,\nPriya")
}

func TestCoverLetters_Generate_Defaults(t *testing.T) {
	uc := NewCoverLettersUsecase()

	letter, err := uc.Generate(CoverLetterInput{
		JobTitle:   "Data Analyst",
		Company:    "Ola",
		Experience: "2 years",
	})
	require.NoError(t, err)

	assert.Contains(t, letter, "systems using software development")
	assert.Contains(t, letter, "Warm regards,\nApplicant")
}

func TestResumes_Parse(t *testing.T) {
	uc := NewResumesUsecase()

	data := uc.Parse("cv.pdf", 2048)

	assert.Len(t, data.Skills, extractedSkillCount)
	pool := map[string]bool{}
	for _, s := range resumeSkillsPool {
		pool[s] = true
	}
	for _, s := range data.Skills {
		assert.True(t, pool[s], "skill %q not from the pool", s)
	}
	assert.Contains(t, data.Summary, "cv.pdf")
	assert.Contains(t, data.Summary, "2KB parsed")

	// Tiny files still report at least 1KB.
	tiny := uc.Parse("cv.txt", 10)
	assert.Contains(t, tiny.Summary, "1KB parsed")
}
