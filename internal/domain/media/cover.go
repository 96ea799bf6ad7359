package media

import (
	"encoding/json"
	"strings"
)

// ImageRef identifies one stored image: the public URL the frontend loads
// and the opaque ID the blob store destroys by.
type ImageRef struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// DecodeCover reads a stored cover column. The column has carried three
// shapes over the site's lifetime: a JSON array of descriptors, a single
// JSON object, and a plain comma-separated filename list. All three must
// stay readable; anything unreadable decodes to an empty slice.
func DecodeCover(raw string) []ImageRef {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []ImageRef{}
	}

	var refs []ImageRef
	if err := json.Unmarshal([]byte(raw), &refs); err == nil {
		if refs == nil {
			refs = []ImageRef{}
		}
		return refs
	}

	var one ImageRef
	if err := json.Unmarshal([]byte(raw), &one); err == nil {
		return []ImageRef{one}
	}

	// Looked like JSON but parsed as neither shape.
	if strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") {
		return []ImageRef{}
	}

	// Legacy rows store bare filenames.
	out := []ImageRef{}
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, ImageRef{PublicID: name})
		}
	}
	return out
}

// EncodeCover writes the canonical array shape. Every new or updated row
// goes to disk in this form regardless of what it decoded from.
func EncodeCover(refs []ImageRef) string {
	if refs == nil {
		refs = []ImageRef{}
	}
	b, _ := json.Marshal(refs)
	return string(b)
}

// EncodeOne writes a single descriptor, used for partner brand logos.
func EncodeOne(ref ImageRef) string {
	b, _ := json.Marshal(ref)
	return string(b)
}
