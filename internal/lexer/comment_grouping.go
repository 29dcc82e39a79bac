package lexer

import (
	"github.com/siliconvibe/hdlfx/internal/source"
	"github.com/siliconvibe/hdlfx/internal/token"
)

// CommentGroupingLexer wraps a Lexer so callers only ever see substantive
// (non-comment) tokens, each annotated with the range of comment tokens
// that immediately preceded it.
type CommentGroupingLexer struct {
	inner *Lexer
}

// NewCommentGroupingLexer wraps a Lexer over src.
func NewCommentGroupingLexer(src *source.Source) *CommentGroupingLexer {
	return &CommentGroupingLexer{inner: New(src)}
}

// Grouped is a substantive token paired with its leading comment range.
type Grouped struct {
	LeadingComments source.LocationRange
	Token           token.Token
}

// Next returns the next substantive token, absorbing any run of comment
// tokens that precede it into LeadingComments.
func (g *CommentGroupingLexer) Next() (Grouped, error) {
	var leading source.LocationRange
	for {
		t, err := g.inner.NextToken()
		if err != nil {
			return Grouped{}, err
		}
		if t.Type == token.LineComment || t.Type == token.BlockComment {
			leading = leading.Join(t.Range)
			continue
		}
		return Grouped{LeadingComments: leading, Token: t}, nil
	}
}
