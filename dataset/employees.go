// Package dataset ships the hand-authored sample table the tool
// describes: ten employees across seven columns, covering every type
// category the summarizer knows about.
package dataset

import (
	"github.com/dot5enko/tabsum/schema"
)

var (
	EducationScale   = []string{"Bachelor", "Master", "PhD"}
	PerformanceScale = []string{"Average", "Good", "Excellent"}
)

func Employees() (*schema.Table, error) {
	return schema.NewTable("employees",
		schema.IntColumn("employee_id", []int64{
			101, 102, 103, 104, 105, 106, 107, 108, 109, 110,
		}),
		schema.StringColumn("name", []string{
			"Alice Johnson", "Bob Smith", "Carol Diaz", "Dan Brown",
			"Eve Chen", "Frank Wright", "Grace Kim", "Henry Patel",
			"Irene Lopez", "Jack Nguyen",
		}),
		schema.StringColumn("department", []string{
			"Engineering", "Marketing", "Engineering", "Sales",
			"Engineering", "HR", "Marketing", "Sales",
			"Finance", "Engineering",
		}),
		schema.IntColumn("years_experience", []int64{
			5, 3, 8, 2, 10, 4, 6, 5, 7, 12,
		}),
		schema.FloatColumn("salary", []float64{
			75000.50, 68000.00, 87000.90, 62000.00,
			95000.25, 71000.80, 73000.60, 78000.30,
			82000.75, 105000.00,
		}),
		schema.OrdinalColumn("education_level", []string{
			"Bachelor", "Bachelor", "Master", "Bachelor",
			"PhD", "Bachelor", "Master", "Bachelor",
			"Master", "Master",
		}, EducationScale),
		schema.OrdinalColumn("performance_rating", []string{
			"Good", "Average", "Excellent", "Average",
			"Excellent", "Good", "Good", "Good",
			"Good", "Excellent",
		}, PerformanceScale),
	)
}

// Categories is the domain-knowledge mapping consumed by Describe.
// The nominal/ordinal split here is asserted, not derived from data.
func Categories() map[string]schema.TypeCategory {
	return map[string]schema.TypeCategory{
		"employee_id":        schema.Discrete,
		"name":               schema.Nominal,
		"department":         schema.Nominal,
		"years_experience":   schema.Discrete,
		"salary":             schema.Continuous,
		"education_level":    schema.Ordinal,
		"performance_rating": schema.Ordinal,
	}
}
