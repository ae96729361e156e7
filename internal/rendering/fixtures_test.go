package rendering

import (
	"github.com/jonathan/harvard-cv/internal/cv"
	"github.com/jonathan/harvard-cv/internal/types"
)

func anaRecord() *cv.Record {
	return cv.Normalize(&types.CVRecord{
		Profile: types.Profile{FirstName: "Ana", LastName: "Ruiz", Email: "ana@x.com"},
		Experience: []types.Experience{
			{Company: "Acme", Role: "Engineer", StartDate: "2021-01", Bullets: []string{"Shipped X"}},
		},
	})
}

func fullRecord() *cv.Record {
	return cv.Normalize(&types.CVRecord{
		Profile: types.Profile{
			FirstName: "José",
			LastName:  "Núñez",
			Email:     "jose@example.com",
			Phone:     "+34 600 000 000",
			Location:  "Sevilla",
			LinkedIn:  "linkedin.com/in/jose",
			Summary:   "Backend engineer & team lead.",
		},
		Education: []types.Education{
			{Degree: "BSc Computer Science", Institution: "Universidad de Sevilla", Location: "Sevilla", StartDate: "2010-09", EndDate: "2014-06", Details: []string{"Honours"}},
			{Degree: "MSc Distributed Systems", Institution: "TU Delft", StartDate: "2014-09", EndDate: "2016-06"},
		},
		Experience: []types.Experience{
			{Company: "Acme", Role: "Engineer", Location: "Madrid", StartDate: "2016-07", EndDate: "2020-02", Bullets: []string{"Built <billing>", "Cut latency 40%"}},
			{Company: "Globex", Role: "Staff Engineer", StartDate: "2020-03", Bullets: []string{"Led platform team"}},
		},
		Certifications: []types.Certification{
			{Name: "CKA", Issuer: "CNCF", Date: "2021-05", CredentialID: "ABC-123"},
		},
		Projects: []types.Project{
			{Name: "ledger", Impact: "Used by 3 teams", Technologies: []string{"Go", "Postgres"}, URL: "https://github.com/jose/ledger"},
		},
		Skills: &types.Skills{Languages: []string{"Go", "Python"}, Tools: []string{"Kubernetes"}},
	})
}
