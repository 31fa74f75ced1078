package catalog

import (
	"strings"

	"github.com/luisferxd1/nexxo-business-sub001/internal/domain"
)

const (
	maxSimilar     = 4
	minTokenLength = 4
)

// SimilarProducts filters same-category candidates down to those sharing a
// keyword with the target: a candidate matches when its name shares a token
// with the target's name, or its description shares a token with the
// target's description. Tokenization is whitespace-only and lower-cased,
// with no stemming or punctuation stripping; only tokens of at least 4
// characters count. Candidate iteration order is preserved and the result
// is capped at 4.
func SimilarProducts(target domain.Product, candidates []domain.Product) []domain.Product {
	nameTokens := tokenize(target.Name)
	descTokens := tokenize(target.Description)

	var matches []domain.Product
	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}
		if c.Name == "" && c.Description == "" {
			continue
		}

		if sharesToken(nameTokens, c.Name) || sharesToken(descTokens, c.Description) {
			matches = append(matches, c)
			if len(matches) == maxSimilar {
				break
			}
		}
	}

	return matches
}

func tokenize(s string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(s)) {
		if len(word) >= minTokenLength {
			tokens[word] = struct{}{}
		}
	}
	return tokens
}

func sharesToken(targetTokens map[string]struct{}, text string) bool {
	if len(targetTokens) == 0 {
		return false
	}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len(word) < minTokenLength {
			continue
		}
		if _, ok := targetTokens[word]; ok {
			return true
		}
	}
	return false
}
