// Package fingerprint produces stable multi-factor semantic identifiers for
// observed page elements. It operates on the capture surface's element
// snapshot model, not a live DOM: the browser side serializes the element and
// its ancestry into an ElementNode tree before handing it over.
package fingerprint

import (
	"strings"

	"github.com/ghostworks/ghostd/pkg/models"
)

// Rect is an element bounding box in CSS pixels.
type Rect struct {
	X, Y, W, H float64
}

// ElementNode is a snapshot of one element as serialized by the capture
// surface. Children holds element children only (text nodes are folded into
// Text). Parent is nil for detached elements and for the document root.
type ElementNode struct {
	Tag      string
	Attrs    map[string]string
	Text     string // concatenated direct text nodes, not descendants
	Rect     Rect
	Parent   *ElementNode
	Children []*ElementNode
}

// Attr returns the named attribute or "".
func (e *ElementNode) Attr(name string) string {
	if e == nil || e.Attrs == nil {
		return ""
	}
	return e.Attrs[name]
}

// Viewport is the viewport size at observation time.
type Viewport struct {
	Width  int
	Height int
}

const (
	maxTextPreview = 200
	maxParentText  = 100
)

// Compute builds a Fingerprint for the element. It is deterministic given
// (element, viewport) and total: detached elements yield a best-effort
// fingerprint with empty parent context.
func Compute(el *ElementNode, vp Viewport) models.Fingerprint {
	if el == nil {
		return models.Fingerprint{DOMPath: []string{}}
	}

	fp := models.Fingerprint{
		ARIA: models.ARIA{
			Role:        el.Attr("role"),
			Label:       el.Attr("aria-label"),
			DescribedBy: el.Attr("aria-describedby"),
			Expanded:    el.Attr("aria-expanded"),
			Checked:     el.Attr("aria-checked"),
			Selected:    el.Attr("aria-selected"),
		},
		TagName:   strings.ToLower(el.Tag),
		DOMPath:   domPath(el),
		Position:  position(el, vp),
		Context:   elementContext(el),
		InputType: inputType(el),
		FormID:    el.Attr("form"),
	}

	text := hashableText(el)
	fp.TextHash = simhash128(text)
	if preview := strings.TrimSpace(el.Text); preview != "" {
		if len(preview) > maxTextPreview {
			preview = preview[:maxTextPreview]
		}
		fp.TextPreview = preview
	}
	return fp
}

// hashableText is the text the simhash is computed over: lowercased trimmed
// direct text, or the placeholder attribute for input/textarea elements.
func hashableText(el *ElementNode) string {
	tag := strings.ToLower(el.Tag)
	text := strings.ToLower(strings.TrimSpace(el.Text))
	if text == "" && (tag == "input" || tag == "textarea") {
		text = strings.ToLower(strings.TrimSpace(el.Attr("placeholder")))
	}
	return text
}

// domPath walks from the element to the document root and emits one
// "tag[role=...]" segment per ancestor, root first. The <html> element is
// excluded.
func domPath(el *ElementNode) []string {
	var segments []string
	for node := el; node != nil; node = node.Parent {
		tag := strings.ToLower(node.Tag)
		if tag == "html" {
			continue
		}
		segments = append(segments, pathSegment(node))
	}
	// Reverse in place: collected leaf-first, emitted root-first.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	if segments == nil {
		segments = []string{}
	}
	return segments
}

func pathSegment(node *ElementNode) string {
	tag := strings.ToLower(node.Tag)
	if role := node.Attr("role"); role != "" {
		return tag + "[role=" + role + "]"
	}
	return tag
}

// position rounds the bounding rect to integer pixels and derives
// viewport-relative coordinates clamped to [0,1].
func position(el *ElementNode, vp Viewport) models.Position {
	pos := models.Position{
		X:         roundPx(el.Rect.X),
		Y:         roundPx(el.Rect.Y),
		W:         roundPx(el.Rect.W),
		H:         roundPx(el.Rect.H),
		ViewportW: vp.Width,
		ViewportH: vp.Height,
	}
	if vp.Width > 0 {
		pos.RelX = clamp01(el.Rect.X / float64(vp.Width))
	}
	if vp.Height > 0 {
		pos.RelY = clamp01(el.Rect.Y / float64(vp.Height))
	}
	return pos
}

func roundPx(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// elementContext captures the parent and sibling neighborhood. Text nodes do
// not count as siblings.
func elementContext(el *ElementNode) models.ElementContext {
	ctx := models.ElementContext{}
	parent := el.Parent
	if parent == nil {
		return ctx
	}

	ctx.ParentTag = strings.ToLower(parent.Tag)
	ctx.ParentRole = parent.Attr("role")
	if text := strings.TrimSpace(parent.Text); text != "" {
		if len(text) > maxParentText {
			text = text[:maxParentText]
		}
		ctx.ParentText = text
	}

	ctx.SiblingCount = len(parent.Children)
	ctx.SiblingIndex = -1
	for i, sib := range parent.Children {
		if sib == el {
			ctx.SiblingIndex = i
			if i > 0 {
				ctx.PrevSiblingTag = strings.ToLower(parent.Children[i-1].Tag)
			}
			if i+1 < len(parent.Children) {
				ctx.NextSiblingTag = strings.ToLower(parent.Children[i+1].Tag)
			}
			break
		}
	}
	return ctx
}

// inputType maps form controls to their input type: the type attribute for
// <input> (defaulting to "text"), the tag name for <select> and <textarea>,
// "" otherwise.
func inputType(el *ElementNode) string {
	switch strings.ToLower(el.Tag) {
	case "input":
		if t := strings.ToLower(el.Attr("type")); t != "" {
			return t
		}
		return "text"
	case "select":
		return "select"
	case "textarea":
		return "textarea"
	}
	return ""
}
