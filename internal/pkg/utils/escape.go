package utils

import "strings"

var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

// EscapeLikePattern neutralizes LIKE/ILIKE metacharacters in a user-supplied
// search term. The term is always bound as a query parameter as well; this
// escaping only stops `%` and `_` from acting as wildcards inside the
// pattern.
func EscapeLikePattern(term string) string {
	return likeEscaper.Replace(term)
}

// ContainsPattern builds a case-insensitive substring ILIKE pattern for a
// user-supplied term.
func ContainsPattern(term string) string {
	return "%" + EscapeLikePattern(term) + "%"
}
