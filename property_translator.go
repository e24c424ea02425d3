package rulekit

// PropertyTranslator maps property names to display labels.
type PropertyTranslator interface {
	// TranslateProperty returns the label and true, or false when it has no
	// label for name.
	TranslateProperty(name string) (string, bool)
}

// MapPropertyTranslator is a PropertyTranslator backed by a map.
type MapPropertyTranslator map[string]string

func (m MapPropertyTranslator) TranslateProperty(name string) (string, bool) {
	l, ok := m[name]
	return l, ok
}

// chainPropertyTranslator asks each translator in order.
type chainPropertyTranslator []PropertyTranslator

func (c chainPropertyTranslator) TranslateProperty(name string) (string, bool) {
	for _, t := range c {
		if t == nil {
			continue
		}
		if l, ok := t.TranslateProperty(name); ok {
			return l, true
		}
	}
	return "", false
}
