// Package catalog holds the fixed set of locally known job postings. The
// set is built once at process start and never changes afterwards; the
// aggregator serves it whenever live results are unavailable.
package catalog

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"applyai/internal/domain/job"
	"applyai/internal/portal"
)

type posting struct {
	title      string
	company    string
	location   string
	salary     string
	portal     string
	skills     []string
	experience string
	match      int
}

var postedLabels = []string{
	"Just now", "1 hour ago", "2 hours ago", "3 hours ago",
	"5 hours ago", "Today", "Yesterday", "2 days ago",
}

var postings = []posting{
	// Tech — React / Frontend
	{"Senior React Developer", "Infosys", "Bangalore", "₹18-25 LPA", "Naukri", []string{"React", "TypeScript", "Node.js", "Redux"}, "3-6 yrs", 94},
	{"Frontend Engineer", "Swiggy", "Bangalore", "₹20-28 LPA", "LinkedIn", []string{"React", "CSS", "JavaScript", "Webpack"}, "2-5 yrs", 89},
	{"UI Developer", "Zomato", "Gurugram", "₹15-22 LPA", "LinkedIn", []string{"React", "Vue.js", "CSS", "Figma"}, "2-4 yrs", 85},
	{"React Native Developer", "CRED", "Bangalore", "₹22-35 LPA", "Naukri", []string{"React Native", "GraphQL", "iOS", "Android"}, "3-5 yrs", 87},
	{"Senior Frontend Developer", "Razorpay", "Bangalore", "₹25-38 LPA", "Foundit", []string{"React", "Next.js", "TypeScript", "AWS"}, "4-7 yrs", 91},
	// Tech — Full Stack
	{"Full Stack Engineer", "Meesho", "Bangalore", "₹18-28 LPA", "LinkedIn", []string{"React", "Node.js", "MongoDB", "Docker"}, "2-5 yrs", 86},
	{"Software Engineer II", "Flipkart", "Bangalore", "₹25-40 LPA", "LinkedIn", []string{"Java", "Spring Boot", "Microservices"}, "2-5 yrs", 72},
	{"Product Engineer", "Groww", "Bangalore", "₹18-26 LPA", "Naukri", []string{"React", "Node.js", "PostgreSQL"}, "2-4 yrs", 88},
	{"Full Stack Developer", "PhonePe", "Bangalore", "₹20-30 LPA", "Foundit", []string{"Go", "gRPC", "React", "Kubernetes"}, "3-5 yrs", 75},
	{"Software Developer", "Paytm", "Noida", "₹16-24 LPA", "Naukri", []string{"Java", "Spring", "MySQL", "Redis"}, "2-5 yrs", 70},
	// Tech — Backend
	{"Backend Engineer", "Ola", "Bangalore", "₹20-32 LPA", "Naukri", []string{"Python", "Django", "PostgreSQL", "Kafka"}, "3-6 yrs", 78},
	{"Python Developer", "Freshworks", "Chennai", "₹18-28 LPA", "LinkedIn", []string{"Python", "FastAPI", "Redis", "AWS"}, "2-5 yrs", 80},
	{"Java Backend Developer", "TCS", "Pune", "₹12-20 LPA", "Naukri", []string{"Java", "Spring Boot", "AWS", "MySQL"}, "3-6 yrs", 68},
	{"Node.js Developer", "Dunzo", "Bangalore", "₹14-22 LPA", "Foundit", []string{"Node.js", "Express", "MongoDB", "Docker"}, "2-4 yrs", 76},
	{"Golang Engineer", "BharatPe", "Delhi", "₹22-34 LPA", "LinkedIn", []string{"Go", "gRPC", "PostgreSQL", "Kubernetes"}, "3-5 yrs", 72},
	// Tech — Data / AI / ML
	{"Data Scientist", "Meesho", "Remote", "₹18-28 LPA", "Naukri", []string{"Python", "ML", "TensorFlow", "SQL"}, "2-4 yrs", 65},
	{"ML Engineer", "Flipkart", "Bangalore", "₹25-40 LPA", "LinkedIn", []string{"Python", "PyTorch", "MLflow", "AWS"}, "3-6 yrs", 78},
	{"Data Analyst", "Ola", "Bangalore", "₹10-18 LPA", "Naukri", []string{"SQL", "Python", "Tableau", "Excel"}, "1-3 yrs", 82},
	{"AI Engineer", "Sarvam AI", "Bangalore", "₹30-50 LPA", "LinkedIn", []string{"Python", "LLMs", "PyTorch", "RLHF"}, "3-7 yrs", 70},
	{"Data Engineer", "Razorpay", "Bangalore", "₹20-32 LPA", "Foundit", []string{"Python", "Spark", "Kafka", "Airflow"}, "3-5 yrs", 73},
	// Tech — DevOps / Cloud
	{"DevOps Engineer", "Infosys", "Hyderabad", "₹18-28 LPA", "Naukri", []string{"Kubernetes", "Docker", "Terraform", "AWS"}, "3-6 yrs", 80},
	{"Cloud Architect", "Wipro", "Bangalore", "₹30-50 LPA", "LinkedIn", []string{"AWS", "Azure", "GCP", "Terraform"}, "6-10 yrs", 74},
	{"SRE Engineer", "Swiggy", "Bangalore", "₹25-38 LPA", "Naukri", []string{"Kubernetes", "Prometheus", "Go", "AWS"}, "3-6 yrs", 77},
	{"AWS Solutions Architect", "Accenture", "Pune", "₹22-35 LPA", "Foundit", []string{"AWS", "Python", "CDK", "Lambda"}, "4-7 yrs", 71},
	// Tech — Mobile
	{"Android Developer", "CRED", "Bangalore", "₹20-32 LPA", "LinkedIn", []string{"Kotlin", "Jetpack Compose", "Android"}, "3-5 yrs", 83},
	{"iOS Developer", "Zepto", "Mumbai", "₹22-35 LPA", "Naukri", []string{"Swift", "SwiftUI", "Xcode", "iOS"}, "3-5 yrs", 79},
	{"Flutter Developer", "ShareChat", "Bangalore", "₹16-26 LPA", "Foundit", []string{"Flutter", "Dart", "Firebase", "iOS"}, "2-4 yrs", 85},
	// Product / Design
	{"Product Manager", "Groww", "Bangalore", "₹25-45 LPA", "LinkedIn", []string{"Product Strategy", "SQL", "Agile"}, "3-6 yrs", 60},
	{"UI/UX Designer", "Meesho", "Bangalore", "₹12-22 LPA", "Naukri", []string{"Figma", "UI Design", "Prototyping"}, "2-4 yrs", 72},
	{"Product Designer", "BharatPe", "Delhi", "₹15-25 LPA", "LinkedIn", []string{"Figma", "UX Research", "Motion Design"}, "2-5 yrs", 68},
	// IT / Management
	{"Technical Lead", "HCL Technologies", "Noida", "₹25-40 LPA", "Naukri", []string{"Java", "Architecture", "Team Lead", "AWS"}, "6-10 yrs", 65},
	{"Engineering Manager", "Nykaa", "Mumbai", "₹35-60 LPA", "LinkedIn", []string{"Leadership", "System Design", "Java"}, "8-12 yrs", 58},
	{"Scrum Master", "Wipro", "Hyderabad", "₹15-25 LPA", "Foundit", []string{"Agile", "Jira", "Scrum", "Kanban"}, "3-6 yrs", 62},
	// Fresher / Junior
	{"Junior React Developer", "Zoho", "Chennai", "₹6-10 LPA", "Naukri", []string{"React", "JavaScript", "HTML", "CSS"}, "0-2 yrs", 88},
	{"Graduate Trainee Engineer", "TCS", "Pan India", "₹3.5-5 LPA", "Indeed", []string{"Java", "Python", "C++", "Problem Solving"}, "0-1 yrs", 95},
	{"Associate Software Engineer", "Infosys", "Pan India", "₹4-6 LPA", "Naukri", []string{"Java", "SQL", "Python", "Git"}, "0-2 yrs", 90},
	{"System Engineer", "Wipro", "Pan India", "₹3-5 LPA", "Foundit", []string{"Java", "C", "Testing", "SQL"}, "0-2 yrs", 88},
	// Non-Tech
	{"Digital Marketing Manager", "Nykaa", "Mumbai", "₹10-18 LPA", "LinkedIn", []string{"SEO", "SEM", "Meta Ads", "Analytics"}, "3-5 yrs", 55},
	{"Business Development Exec", "Freshworks", "Chennai", "₹8-14 LPA", "Naukri", []string{"Sales", "CRM", "Cold Calling", "B2B"}, "2-4 yrs", 60},
	{"HR Business Partner", "Swiggy", "Bangalore", "₹12-20 LPA", "LinkedIn", []string{"HR", "Recruitment", "HRIS", "Culture"}, "3-5 yrs", 58},
	// Finance
	{"Finance Analyst", "Zerodha", "Bangalore", "₹10-18 LPA", "Naukri", []string{"Excel", "Python", "SQL", "Tally"}, "2-4 yrs", 62},
	{"Chartered Accountant", "Paytm", "Noida", "₹15-25 LPA", "LinkedIn", []string{"CA", "Taxation", "GST", "Excel"}, "2-5 yrs", 60},
	// Startup / Remote roles
	{"Remote Fullstack Dev", "Postman", "Remote", "₹20-35 LPA", "LinkedIn", []string{"Node.js", "React", "PostgreSQL", "Docker"}, "3-5 yrs", 84},
	{"Remote Frontend Dev", "Hasura", "Remote", "₹18-30 LPA", "LinkedIn", []string{"React", "TypeScript", "GraphQL", "CSS"}, "2-4 yrs", 88},
	{"Backend Dev (Remote)", "Setu", "Remote", "₹15-25 LPA", "Naukri", []string{"Python", "API", "PostgreSQL", "AWS"}, "2-4 yrs", 79},
	// Generalist IT
	{"QA Engineer", "Razorpay", "Bangalore", "₹14-22 LPA", "Naukri", []string{"Selenium", "Python", "Test Automation"}, "2-4 yrs", 70},
	{"Test Automation Engineer", "Infosys", "Hyderabad", "₹14-22 LPA", "Foundit", []string{"Cypress", "Jest", "Python", "CI/CD"}, "2-5 yrs", 68},
	{"Security Engineer", "Razorpay", "Bangalore", "₹22-36 LPA", "LinkedIn", []string{"AppSec", "Pen Testing", "Python", "AWS"}, "3-5 yrs", 65},
	{"Blockchain Developer", "Polygon", "Remote", "₹25-45 LPA", "LinkedIn", []string{"Solidity", "Web3.js", "Ethereum", "Go"}, "2-5 yrs", 60},
	{"Technical Writer", "Freshworks", "Chennai", "₹8-14 LPA", "Naukri", []string{"Technical Writing", "Markdown", "APIs"}, "2-4 yrs", 72},
}

// Build materializes the catalog in its fixed order. The "posted" freshness
// label is drawn once here, so repeated searches over the catalog stay
// idempotent within a process lifetime.
func Build() []job.Job {
	jobs := make([]job.Job, 0, len(postings))
	for i, p := range postings {
		u := portal.URLFor(p.portal, p.title, p.location)
		jobs = append(jobs, job.Job{
			ID:          fmt.Sprintf("j%d", i+1),
			Title:       p.title,
			Company:     p.company,
			Location:    p.location,
			Salary:      p.salary,
			Portal:      p.portal,
			Skills:      p.skills,
			Experience:  p.experience,
			Posted:      postedLabels[rand.IntN(len(postedLabels))],
			Match:       p.match,
			URL:         u,
			ApplyURL:    u,
			Description: describe(p),
		})
	}
	return jobs
}

func describe(p posting) string {
	highlights := p.skills
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}
	return fmt.Sprintf("We are looking for a talented %s to join our team at %s — %s. You will work with %s to build scalable solutions.",
		p.title, p.company, p.location, strings.Join(highlights, ", "))
}
