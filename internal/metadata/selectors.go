package metadata

// selectors maps the int-valued properties whose values are really picked
// from a fixed set of symbolic keys to the domain holding those keys.
var selectors = map[string]string{
	"horizontalAlignment":       DomainHorizontalAlignment,
	"verticalAlignment":         DomainVerticalAlignment,
	"orientation":               DomainOrientation,
	"focusLostBehavior":         DomainFocusLostBehavior,
	"horizontalScrollBarPolicy": DomainHorizontalScrollBar,
	"verticalScrollBarPolicy":   DomainVerticalScrollBar,
	"tabPlacement":              DomainTabPlacement,
	"tabLayoutPolicy":           DomainTabLayoutPolicy,
}

// SelectorDomain returns the domain key for a recognized selector property.
func SelectorDomain(property string) (string, bool) {
	key, ok := selectors[property]
	return key, ok
}
