package rules

// WebsiteCategoryName is the single category used for non-repository targets.
const WebsiteCategoryName = "Website Compliance"

// WebsiteRule is a probe over a web page's extracted plain text. Website
// rules carry a higher weight than repository rules to compensate for the
// much smaller rule count.
type WebsiteRule struct {
	Name   string
	Weight int
	Eval   func(pageText string) Outcome
}

// WebsiteRules returns the fixed two-rule set applied to website targets.
func WebsiteRules() []WebsiteRule {
	return []WebsiteRule{
		{
			Name:   "Mentions OWASP",
			Weight: 5,
			Eval: func(pageText string) Outcome {
				details := "Searched page text for 'OWASP'"
				if !containsAny(pageText, "owasp") {
					return Fail(details,
						"Reference OWASP on the project page and link to the OWASP project listing.")
				}
				return Pass(details)
			},
		},
		{
			Name:   "Security-focused content",
			Weight: 5,
			Eval: func(pageText string) Outcome {
				details := "Searched page text for keywords: security, vulnerability, privacy"
				if !containsAny(pageText, "security", "vulnerability", "privacy") {
					return Fail(details,
						"Add security-focused content to the page describing the project's security posture and privacy practices.")
				}
				return Pass(details)
			},
		},
	}
}
