package webhook

// Component wire constants.
const (
	componentActionRow = 1
	componentButton    = 2
	buttonStyleLink    = 5
)

// Button is a link-style button attached to a message.
type Button struct {
	Label string
	URL   string
}

// ToDocument returns the button in its wire shape.
func (b Button) ToDocument() Document {
	return Document{
		"type":  componentButton,
		"style": buttonStyleLink,
		"label": b.Label,
		"url":   b.URL,
	}
}

// actionRow wraps buttons into the single component row a message carries.
func actionRow(buttons []Button) Document {
	components := make([]Document, 0, len(buttons))
	for _, b := range buttons {
		components = append(components, b.ToDocument())
	}
	return Document{
		"type":       componentActionRow,
		"components": components,
	}
}
