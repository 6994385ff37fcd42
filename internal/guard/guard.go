// Package guard bounds text length before it is handed to a generation
// capability. A tokenizer capability gives a precise token bound; without
// one the package degrades to a character approximation. Bound never fails:
// oversized input is a recoverable condition, not an error.
package guard

// Tokenizer is the optional token-counting capability. Encode returns at
// most maxTokens token ids for the text; Decode reconstructs text from ids.
// Absence (nil) or failure of either method routes Bound to the character
// heuristic.
type Tokenizer interface {
	Encode(text string, maxTokens int) ([]int, error)
	Decode(tokens []int) (string, error)
}

// charsPerToken approximates one token as four characters when no tokenizer
// is available.
const charsPerToken = 4

// Bound returns text truncated to at most maxTokens tokens. With a working
// tokenizer this is encode-truncate-decode; otherwise the text is cut at
// maxTokens*4 characters. Truncation may fall mid-sentence: losing trailing
// content is accepted in exchange for never overflowing the capability's
// input window.
func Bound(text string, tokenizer Tokenizer, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	if tokenizer != nil {
		if bounded, ok := tokenBound(text, tokenizer, maxTokens); ok {
			return bounded
		}
	}
	return charBound(text, maxTokens*charsPerToken)
}

// tokenBound runs the encode-truncate-decode path. Any error or panic from
// the injected tokenizer reports failure so Bound can fall back silently.
func tokenBound(text string, tokenizer Tokenizer, maxTokens int) (bounded string, ok bool) {
	defer func() {
		if recover() != nil {
			bounded, ok = "", false
		}
	}()

	tokens, err := tokenizer.Encode(text, maxTokens)
	if err != nil {
		return "", false
	}
	decoded, err := tokenizer.Decode(tokens)
	if err != nil {
		return "", false
	}
	return decoded, true
}

// charBound cuts text to maxChars characters, counting runes so multi-byte
// characters are never split.
func charBound(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}
