package encode

type EncodeOption func(*EncState)

// Document writes the children of the node, one member per line, as a
// document rather than the node itself.
func Document() EncodeOption {
	return func(es *EncState) { es.document = true }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
