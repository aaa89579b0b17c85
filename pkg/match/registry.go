package match

import "sync"

// Extender is the host assertion framework's extension point: it
// receives the full matcher-name-to-function mapping once at bootstrap.
type Extender interface {
	Extend(matchers map[string]any)
}

// ExtenderFunc adapts a function to the Extender interface.
type ExtenderFunc func(matchers map[string]any)

// Extend implements Extender.
func (f ExtenderFunc) Extend(matchers map[string]any) { f(matchers) }

// Matchers returns the full matcher surface keyed by the names test
// code uses. The map is rebuilt per call; mutating it does not affect
// the package.
func Matchers() map[string]any {
	return map[string]any{
		"toHaveClass":                    HaveClass,
		"toHaveClasses":                  HaveClasses,
		"toMatchClasses":                 MatchClasses,
		"toHaveAttribute":                HaveAttribute,
		"toEqualAttribute":               EqualAttribute,
		"toEqualAttributes":              EqualAttributes,
		"toHaveProperty":                 HaveProperty,
		"toHaveTextContent":              HaveTextContent,
		"toEqualText":                    EqualText,
		"toHaveShadowRoot":               HaveShadowRoot,
		"toEqualHtml":                    EqualHTML,
		"toEqualLightHtml":               EqualLightHTML,
		"toHaveReceivedEvent":            HaveReceivedEvent,
		"toHaveReceivedEventTimes":       HaveReceivedEventTimes,
		"toHaveReceivedEventDetail":      HaveReceivedEventDetail,
		"toHaveFirstReceivedEventDetail": HaveFirstReceivedEventDetail,
		"toHaveLastReceivedEventDetail":  HaveLastReceivedEventDetail,
		"toHaveNthReceivedEventDetail":   HaveNthReceivedEventDetail,
	}
}

var registerOnce sync.Once

// Register hands the matcher mapping to the host framework's extension
// point. Registration is process-wide and happens exactly once; later
// calls are no-ops, so there is no runtime re-registration.
func Register(ext Extender) {
	registerOnce.Do(func() {
		ext.Extend(Matchers())
	})
}
