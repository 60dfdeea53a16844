package util

// Envelope is the JSON object every handler responds with. Rejections use the
// single "error" key so the page can show the text as-is.
type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

// With sets key and returns the same envelope for chaining.
func (e Envelope) With(key string, value any) Envelope {
	e[key] = value
	return e
}
