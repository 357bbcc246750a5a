package helper

import (
	"github.com/aretw0/introspection"
)

// RegistryState exposes the registry composition for observability.
type RegistryState struct {
	Wired      bool              `json:"wired"`
	Locale     string            `json:"locale,omitempty"`
	Currency   string            `json:"currency,omitempty"`
	Routes     map[string]string `json:"routes,omitempty"`
	Modules    []string          `json:"modules,omitempty"`
	Operations []string          `json:"operations,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Registry) State() any {
	if !r.Wired() {
		return RegistryState{}
	}

	routes := make(map[string]string)
	for _, route := range r.routes.Routes() {
		routes[route.Name] = route.Pattern
	}
	return RegistryState{
		Wired:      true,
		Locale:     r.currency.Locale(),
		Currency:   r.currency.Currency(),
		Routes:     routes,
		Modules:    r.Modules(),
		Operations: r.Operations(),
	}
}

// ComponentType implements introspection.Component.
func (r *Registry) ComponentType() string {
	return "helper-registry"
}

var _ introspection.Introspectable = (*Registry)(nil)
var _ introspection.Component = (*Registry)(nil)
