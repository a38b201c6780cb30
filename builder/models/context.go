package models

// Context is the value map handed to a template.
type Context map[string]interface{}

// Merge returns a new Context holding c overlaid with overlay. Neither
// input is modified; overlay wins on conflicting keys.
func (c Context) Merge(overlay map[string]interface{}) Context {
	out := make(Context, len(c)+len(overlay))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
