package classify

// DefaultRules returns the built-in tables for a typical website build.
func DefaultRules() RuleSet {
	return RuleSet{
		Teams: []Rule{
			{Pattern: `\b(design|ui|ux|wireframes?|mockups?|brand(ing)?|logos?|palette|typography|icons?)\b`, Result: "Design"},
			{Pattern: `\b(pages?|layouts?|responsive|components?|frontend|navigation|nav|menus?|hero|footer|header|animations?|forms?)\b`, Result: "Frontend"},
			{Pattern: `\b(apis?|backend|database|db|server|auth(entication)?|login|sign ?up|accounts?|webhooks?|integrations?|cms)\b`, Result: "Backend"},
			{Pattern: `\b(payments?|checkout|cart|orders?|stripe|invoices?)\b`, Result: "Backend"},
			{Pattern: `\b(deploy(ment)?|hosting|domains?|dns|ssl|ci/cd|pipelines?|monitoring|backups?)\b`, Result: "DevOps"},
			{Pattern: `\b(content|copy(writing)?|blog|articles?|seo|translations?|locali[sz]ation|i18n)\b`, Result: "Content"},
			{Pattern: `\b(tests?|testing|qa|bugs?|accessibility|a11y|performance|audit)\b`, Result: "QA"},
			{Pattern: `\b(analytics|tracking|tag manager|pixels?|reports?|reporting)\b`, Result: "Marketing"},
		},
		Notes: []Rule{
			{Pattern: `\b(payments?|checkout|stripe|invoices?)\b`, Result: "Coordinate with payment provider; test in sandbox first"},
			{Pattern: `\b(integrations?|third[- ]party|webhooks?|apis?)\b`, Result: "Depends on external API credentials"},
			{Pattern: `\b(auth(entication)?|login|sign ?up|passwords?)\b`, Result: "Security review required"},
			{Pattern: `\b(seo|meta|sitemap)\b`, Result: "Confirm target keywords with marketing"},
			{Pattern: `\b(content|copy(writing)?|blog|translations?)\b`, Result: "Waiting on client content"},
			{Pattern: `\b(domains?|dns|ssl|hosting)\b`, Result: "Needs client account access"},
			{Pattern: `\b(accessibility|a11y)\b`, Result: "Target WCAG 2.1 AA"},
		},
	}
}
