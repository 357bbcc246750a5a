package helpers

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/aretw0/performer/pkg/helper"
)

const (
	TextHelperName = "TextHelper"

	OpTimeAgoInWords      = "time_ago_in_words"
	OpNumberWithDelimiter = "number_with_delimiter"
	OpPluralize           = "pluralize"
	OpTruncate            = "truncate"
)

const (
	defaultTruncateLength = 30
	defaultOmission       = "..."
)

// TextHelper offers the text formatting helpers views usually need.
//
// Options:
//
//	length:   default truncate length (30)
//	omission: suffix appended to truncated text ("...")
type TextHelper struct {
	length   int
	omission string
	now      func() time.Time
}

// NewTextHelper is the catalog factory for TextHelper.
func NewTextHelper(def helper.Definition) (helper.Module, error) {
	h := &TextHelper{
		length:   optionInt(def, "length", defaultTruncateLength),
		omission: optionString(def, "omission", defaultOmission),
		now:      time.Now,
	}
	if h.length <= 0 {
		return nil, fmt.Errorf("length must be positive, got %d", h.length)
	}
	return h, nil
}

// WithNow replaces the clock used by time_ago_in_words.
func (h *TextHelper) WithNow(now func() time.Time) *TextHelper {
	h.now = now
	return h
}

func (h *TextHelper) Name() string { return TextHelperName }

func (h *TextHelper) Operations() map[string]helper.Operation {
	return map[string]helper.Operation{
		OpTimeAgoInWords:      h.timeAgoInWords,
		OpNumberWithDelimiter: numberWithDelimiter,
		OpPluralize:           pluralize,
		OpTruncate:            h.truncate,
	}
}

func (h *TextHelper) timeAgoInWords(args ...any) (any, error) {
	t, err := helper.TimeArg(args, 0)
	if err != nil {
		return nil, err
	}
	return humanize.RelTime(t, h.now(), "ago", "from now"), nil
}

func numberWithDelimiter(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing argument 0")
	}
	switch v := args[0].(type) {
	case int:
		return humanize.Comma(int64(v)), nil
	case int64:
		return humanize.Comma(v), nil
	case float64:
		return humanize.Commaf(v), nil
	case float32:
		return humanize.Commaf(float64(v)), nil
	default:
		return nil, fmt.Errorf("argument 0: expected number, got %T", args[0])
	}
}

// pluralize(count, singular[, plural]) renders "1 article" or "2 articles".
func pluralize(args ...any) (any, error) {
	count, err := helper.IntArg(args, 0)
	if err != nil {
		return nil, err
	}
	singular, err := helper.StringArg(args, 1)
	if err != nil {
		return nil, err
	}
	plural := ""
	if len(args) > 2 {
		if plural, err = helper.StringArg(args, 2); err != nil {
			return nil, err
		}
	}
	return english.Plural(count, singular, plural), nil
}

// truncate(text[, length]) shortens text to length runes, omission included.
func (h *TextHelper) truncate(args ...any) (any, error) {
	text, err := helper.StringArg(args, 0)
	if err != nil {
		return nil, err
	}
	length := h.length
	if len(args) > 1 {
		if length, err = helper.IntArg(args, 1); err != nil {
			return nil, err
		}
	}

	if utf8.RuneCountInString(text) <= length {
		return text, nil
	}
	keep := length - utf8.RuneCountInString(h.omission)
	if keep <= 0 {
		return h.omission, nil
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:keep]), " ") + h.omission, nil
}
