// Package dto provides the share link API request and response bodies.
package dto

// PublicFormQuery is the query string of a public form request. The token is taken as
// sent; an absent token and an empty one are the same.
type PublicFormQuery struct {
	Token   string `form:"token"`
	Preview string `form:"preview"`
}

// IsPreview reports whether preview mode was requested. Only the literal "true" counts.
func (q PublicFormQuery) IsPreview() bool {
	return q.Preview == "true"
}
