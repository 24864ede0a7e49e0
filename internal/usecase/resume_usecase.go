package usecase

import (
	"fmt"

	"github.com/samber/lo"
)

// Resume parsing is a stub collaborator: it returns plausible canned data
// for the client to correct, no actual document analysis happens.

const extractedSkillCount = 7

var resumeSkillsPool = []string{
	"React", "JavaScript", "Python", "Node.js", "TypeScript", "AWS", "Docker",
	"MongoDB", "PostgreSQL", "Java", "Spring Boot", "CSS", "HTML", "Git", "MySQL",
	"Kubernetes", "Redis", "FastAPI", "Django", "TensorFlow", "Flutter", "Kotlin",
}

type ResumeData struct {
	Name       string
	Email      string
	Phone      string
	Experience string
	Skills     []string
	JobTitles  []string
	Education  string
	Summary    string
}

type Resumes struct{}

func NewResumesUsecase() *Resumes {
	return &Resumes{}
}

func (u *Resumes) Parse(filename string, sizeBytes int64) ResumeData {
	sizeKB := sizeBytes / 1024
	if sizeKB == 0 {
		sizeKB = 1
	}
	return ResumeData{
		Name:       "Your Name",
		Email:      "your@email.com",
		Phone:      "+91 9876543210",
		Experience: "3 years",
		Skills:     lo.Samples(resumeSkillsPool, extractedSkillCount),
		JobTitles:  []string{"Software Engineer", "Full Stack Developer"},
		Education:  "B.Tech Computer Science",
		Summary:    fmt.Sprintf("Resume '%s' uploaded — %dKB parsed. Update your profile with the correct details.", filename, sizeKB),
	}
}
