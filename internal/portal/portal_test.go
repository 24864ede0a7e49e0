package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "senior-react-developer", Slug("Senior React Developer"))
	assert.Equal(t, "c-go-developer", Slug("C++ / Go Developer!"))
	assert.Equal(t, "pune", Slug("--Pune--"))
	assert.Equal(t, "", Slug("???"))
}

func TestURLFor_IsDeterministic(t *testing.T) {
	want := "https://www.linkedin.com/jobs/search/?keywords=Data+Scientist&location=Pune&f_TPR=r604800"
	for i := 0; i < 3; i++ {
		assert.Equal(t, want, URLFor(LinkedIn, "Data Scientist", "Pune"))
	}
}

func TestURLFor_PortalTemplates(t *testing.T) {
	assert.Equal(t,
		"https://www.naukri.com/senior-react-developer-jobs-in-bangalore",
		URLFor(Naukri, "Senior React Developer", "Bangalore"))

	assert.Equal(t,
		"https://www.foundit.in/srp/results?query=DevOps+Engineer&location=Hyderabad",
		URLFor(Foundit, "DevOps Engineer", "Hyderabad"))

	assert.Equal(t,
		"https://in.indeed.com/jobs?q=Graduate+Trainee+Engineer&l=Pan+India",
		URLFor(Indeed, "Graduate Trainee Engineer", "Pan India"))
}

func TestURLFor_UnknownPortalFallsBackToNaukri(t *testing.T) {
	assert.Equal(t,
		NaukriURL("QA Engineer", "Chennai"),
		URLFor("SomePortalNobodyKnows", "QA Engineer", "Chennai"))
}

func TestInternshalaURL(t *testing.T) {
	assert.Equal(t,
		"https://internshala.com/jobs/software-engineer-jobs",
		InternshalaURL("Software Engineer"))
}

func TestLinks_CoversAllPortals(t *testing.T) {
	links := Links("Software Engineer", "Bangalore")

	assert.Len(t, links, 5)
	for _, key := range []string{"linkedin", "naukri", "foundit", "indeed", "internshala"} {
		assert.NotEmpty(t, links[key], key)
	}
	assert.Equal(t, LinkedInURL("Software Engineer", "Bangalore"), links["linkedin"])
}
