package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree assembles html > body > form > [label, button] and returns the
// button node.
func buildTree() *ElementNode {
	html := &ElementNode{Tag: "html"}
	body := &ElementNode{Tag: "body", Parent: html}
	form := &ElementNode{
		Tag:    "form",
		Attrs:  map[string]string{"role": "search"},
		Text:   "Find invoices",
		Parent: body,
		Rect:   Rect{X: 0, Y: 100, W: 600, H: 200},
	}
	label := &ElementNode{Tag: "label", Text: "Query", Parent: form}
	button := &ElementNode{
		Tag:    "BUTTON",
		Attrs:  map[string]string{"role": "button", "aria-label": "Search"},
		Text:   "Search",
		Parent: form,
		Rect:   Rect{X: 480.4, Y: 250.6, W: 96, H: 32},
	}
	html.Children = []*ElementNode{body}
	body.Children = []*ElementNode{form}
	form.Children = []*ElementNode{label, button}
	return button
}

func TestCompute_DOMPathRootFirstWithoutHTML(t *testing.T) {
	button := buildTree()
	fp := Compute(button, Viewport{Width: 1280, Height: 800})

	assert.Equal(t, []string{"body", "form[role=search]", "button[role=button]"}, fp.DOMPath)
	assert.Equal(t, "button", fp.TagName)
}

func TestCompute_ARIAAndContext(t *testing.T) {
	button := buildTree()
	fp := Compute(button, Viewport{Width: 1280, Height: 800})

	assert.Equal(t, "button", fp.ARIA.Role)
	assert.Equal(t, "Search", fp.ARIA.Label)

	assert.Equal(t, "form", fp.Context.ParentTag)
	assert.Equal(t, "search", fp.Context.ParentRole)
	assert.Equal(t, "Find invoices", fp.Context.ParentText)
	assert.Equal(t, 2, fp.Context.SiblingCount)
	assert.Equal(t, 1, fp.Context.SiblingIndex)
	assert.Equal(t, "label", fp.Context.PrevSiblingTag)
	assert.Empty(t, fp.Context.NextSiblingTag)
}

func TestCompute_PositionRoundingAndRelatives(t *testing.T) {
	button := buildTree()
	fp := Compute(button, Viewport{Width: 1280, Height: 800})

	assert.Equal(t, 480, fp.Position.X)
	assert.Equal(t, 251, fp.Position.Y)
	assert.InDelta(t, 480.4/1280.0, fp.Position.RelX, 1e-9)
	assert.InDelta(t, 250.6/800.0, fp.Position.RelY, 1e-9)
}

func TestCompute_RelativeCoordinatesClamped(t *testing.T) {
	offscreen := &ElementNode{Tag: "div", Rect: Rect{X: -40, Y: 2000}}
	fp := Compute(offscreen, Viewport{Width: 1280, Height: 800})

	assert.Equal(t, 0.0, fp.Position.RelX)
	assert.Equal(t, 1.0, fp.Position.RelY)
}

func TestCompute_ZeroViewportLeavesRelativesZero(t *testing.T) {
	el := &ElementNode{Tag: "div", Rect: Rect{X: 100, Y: 100}}
	fp := Compute(el, Viewport{})

	assert.Equal(t, 0.0, fp.Position.RelX)
	assert.Equal(t, 0.0, fp.Position.RelY)
}

func TestCompute_InputTypes(t *testing.T) {
	tests := []struct {
		name string
		el   *ElementNode
		want string
	}{
		{"explicit type", &ElementNode{Tag: "input", Attrs: map[string]string{"type": "Password"}}, "password"},
		{"default text", &ElementNode{Tag: "input"}, "text"},
		{"select", &ElementNode{Tag: "select"}, "select"},
		{"textarea", &ElementNode{Tag: "textarea"}, "textarea"},
		{"non-form element", &ElementNode{Tag: "div"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := Compute(tt.el, Viewport{Width: 1280, Height: 800})
			assert.Equal(t, tt.want, fp.InputType)
		})
	}
}

func TestCompute_TextPreviewTruncated(t *testing.T) {
	long := make([]byte, 0, 400)
	for i := 0; i < 400; i++ {
		long = append(long, 'a')
	}
	el := &ElementNode{Tag: "p", Text: string(long)}
	fp := Compute(el, Viewport{Width: 1280, Height: 800})

	assert.Len(t, fp.TextPreview, maxTextPreview)
}

func TestCompute_DetachedElement(t *testing.T) {
	el := &ElementNode{Tag: "span", Text: "hi"}
	fp := Compute(el, Viewport{Width: 1280, Height: 800})

	assert.Equal(t, []string{"span"}, fp.DOMPath)
	assert.Empty(t, fp.Context.ParentTag)

	nilFP := Compute(nil, Viewport{})
	assert.Equal(t, []string{}, nilFP.DOMPath)
}

func TestSimhash_StableAndCaseInsensitive(t *testing.T) {
	a := Compute(&ElementNode{Tag: "button", Text: "Submit Order"}, Viewport{})
	b := Compute(&ElementNode{Tag: "button", Text: "  submit order  "}, Viewport{})

	require.Len(t, a.TextHash, 32)
	assert.Equal(t, a.TextHash, b.TextHash)
}

func TestSimhash_DiffersForUnrelatedText(t *testing.T) {
	a := simhash128("submit order")
	b := simhash128("delete account permanently")
	assert.NotEqual(t, a, b)
}

func TestSimhash_PlaceholderFallbackForEmptyInputs(t *testing.T) {
	input := &ElementNode{Tag: "input", Attrs: map[string]string{"placeholder": "Search invoices"}}
	fp := Compute(input, Viewport{})

	assert.Equal(t, simhash128("search invoices"), fp.TextHash)
	assert.Empty(t, fp.TextPreview)
}

func TestSimhash_EmptyTextIsAllZeros(t *testing.T) {
	assert.Equal(t, "00000000000000000000000000000000", simhash128(""))
}
