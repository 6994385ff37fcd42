package guard

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// fakeTokenizer treats each word as one token.
type fakeTokenizer struct {
	words     []string
	encodeErr error
	decodeErr error
	panics    bool
}

func (f *fakeTokenizer) Encode(text string, maxTokens int) ([]int, error) {
	if f.panics {
		panic("tokenizer crashed")
	}
	if f.encodeErr != nil {
		return nil, f.encodeErr
	}
	f.words = strings.Fields(text)
	if len(f.words) > maxTokens {
		f.words = f.words[:maxTokens]
	}
	ids := make([]int, len(f.words))
	for i := range ids {
		ids[i] = i
	}
	return ids, nil
}

func (f *fakeTokenizer) Decode(tokens []int) (string, error) {
	if f.decodeErr != nil {
		return "", f.decodeErr
	}
	return strings.Join(f.words[:len(tokens)], " "), nil
}

func TestBound_ShortTextUnchanged(t *testing.T) {
	text := "texto curto"
	assert.Equal(t, text, Bound(text, nil, 100))
}

func TestBound_CharFallbackTruncates(t *testing.T) {
	text := strings.Repeat("a", 100)
	bounded := Bound(text, nil, 10)
	assert.Len(t, bounded, 40)
}

func TestBound_CharFallbackKeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("ç", 100)
	bounded := Bound(text, nil, 10)
	assert.True(t, utf8.ValidString(bounded))
	assert.Equal(t, 40, utf8.RuneCountInString(bounded))
}

func TestBound_TokenizerTruncates(t *testing.T) {
	bounded := Bound("um dois três quatro cinco", &fakeTokenizer{}, 3)
	assert.Equal(t, "um dois três", bounded)
}

func TestBound_TokenizerEncodeErrorFallsBack(t *testing.T) {
	tok := &fakeTokenizer{encodeErr: errors.New("encode failed")}
	text := strings.Repeat("a", 100)
	bounded := Bound(text, tok, 10)
	assert.Len(t, bounded, 40)
}

func TestBound_TokenizerDecodeErrorFallsBack(t *testing.T) {
	tok := &fakeTokenizer{decodeErr: errors.New("decode failed")}
	text := strings.Repeat("a", 100)
	bounded := Bound(text, tok, 10)
	assert.Len(t, bounded, 40)
}

func TestBound_TokenizerPanicFallsBack(t *testing.T) {
	tok := &fakeTokenizer{panics: true}
	text := strings.Repeat("a", 100)
	assert.NotPanics(t, func() {
		bounded := Bound(text, tok, 10)
		assert.Len(t, bounded, 40)
	})
}

func TestBound_NonPositiveBudget(t *testing.T) {
	assert.Equal(t, "", Bound("qualquer texto", nil, 0))
	assert.Equal(t, "", Bound("qualquer texto", nil, -1))
}

func TestBound_EmptyText(t *testing.T) {
	assert.Equal(t, "", Bound("", &fakeTokenizer{}, 10))
}
