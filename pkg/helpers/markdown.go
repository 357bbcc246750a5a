package helpers

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/aretw0/performer/pkg/helper"
)

const (
	MarkdownHelperName = "MarkdownHelper"

	OpMarkdownify = "markdownify"
)

// MarkdownHelper renders Markdown to HTML. Raw HTML in the input is dropped
// unless the definition sets options.unsafe: true.
type MarkdownHelper struct {
	md goldmark.Markdown
}

// NewMarkdownHelper is the catalog factory for MarkdownHelper.
func NewMarkdownHelper(def helper.Definition) (helper.Module, error) {
	var rendererOpts []goldmark.Option
	if optionBool(def, "unsafe", false) {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	if optionBool(def, "gfm", true) {
		rendererOpts = append(rendererOpts, goldmark.WithExtensions(extension.GFM))
	}
	return &MarkdownHelper{md: goldmark.New(rendererOpts...)}, nil
}

func (h *MarkdownHelper) Name() string { return MarkdownHelperName }

func (h *MarkdownHelper) Operations() map[string]helper.Operation {
	return map[string]helper.Operation{
		OpMarkdownify: h.markdownify,
	}
}

func (h *MarkdownHelper) markdownify(args ...any) (any, error) {
	src, err := helper.StringArg(args, 0)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(src), &buf); err != nil {
		return nil, err
	}
	return buf.String(), nil
}
