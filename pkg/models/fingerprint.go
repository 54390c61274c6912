package models

// ARIA holds the accessibility attributes captured from an element.
type ARIA struct {
	Role        string `json:"role,omitempty"`
	Label       string `json:"label,omitempty"`
	DescribedBy string `json:"describedBy,omitempty"`
	Expanded    string `json:"expanded,omitempty"`
	Checked     string `json:"checked,omitempty"`
	Selected    string `json:"selected,omitempty"`
}

// Position is the element's bounding box plus viewport-relative coordinates.
// RelX and RelY are clamped to [0,1].
type Position struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	W         int     `json:"w"`
	H         int     `json:"h"`
	ViewportW int     `json:"vw"`
	ViewportH int     `json:"vh"`
	RelX      float64 `json:"relX"`
	RelY      float64 `json:"relY"`
}

// ElementContext captures the element's immediate surroundings.
type ElementContext struct {
	ParentTag      string `json:"parentTag,omitempty"`
	ParentRole     string `json:"parentRole,omitempty"`
	ParentText     string `json:"parentText,omitempty"` // direct text, ≤100 chars
	SiblingCount   int    `json:"siblingCount"`
	SiblingIndex   int    `json:"siblingIndex"`
	PrevSiblingTag string `json:"prevSiblingTag,omitempty"`
	NextSiblingTag string `json:"nextSiblingTag,omitempty"`
}

// Fingerprint is a stable multi-factor semantic identifier for an observed
// element. TextPreview only exists pre-scrub; the privacy pipeline strips it
// before anything leaves the device.
type Fingerprint struct {
	ARIA        ARIA           `json:"aria"`
	TextHash    string         `json:"textHash"` // 128-bit simhash, lowercase hex
	TextPreview string         `json:"textPreview,omitempty"`
	Position    Position       `json:"position"`
	DOMPath     []string       `json:"domPath"` // "tag[role=...]" segments, root first
	TagName     string         `json:"tagName"`
	Context     ElementContext `json:"context"`
	InputType   string         `json:"inputType,omitempty"`
	FormID      string         `json:"formId,omitempty"`
}
