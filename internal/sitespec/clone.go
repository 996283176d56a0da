package sitespec

// Clone returns a structurally independent copy of the document. No nested
// map or slice is aliased between input and output; the auto-fix transformer
// relies on this to keep the caller's original intact.
func (d *SiteIntentDocument) Clone() *SiteIntentDocument {
	if d == nil {
		return nil
	}
	out := *d
	out.Personality = append(PersonalityVector(nil), d.Personality...)
	out.Brand = d.Brand.clone()
	out.Pages = make([]PageSpec, len(d.Pages))
	for i, p := range d.Pages {
		out.Pages[i] = p.Clone()
	}
	return &out
}

// Clone returns a deep copy of the page.
func (p PageSpec) Clone() PageSpec {
	out := p
	out.Components = make([]ComponentPlacement, len(p.Components))
	for i, c := range p.Components {
		out.Components[i] = c.Clone()
	}
	return out
}

// Clone returns a deep copy of the placement.
func (c ComponentPlacement) Clone() ComponentPlacement {
	out := c
	out.Content = cloneMap(c.Content)
	out.VisualConfig = cloneMap(c.VisualConfig)
	return out
}

func (b BrandCharacter) clone() BrandCharacter {
	out := b
	out.EmotionalGoals = append([]string(nil), b.EmotionalGoals...)
	out.AntiReferences = append([]string(nil), b.AntiReferences...)
	out.NarrativePrompts = append([]string(nil), b.NarrativePrompts...)
	return out
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, e := range t {
			out[i] = cloneMap(e)
		}
		return out
	default:
		return v
	}
}
