package propmods

// PropsProvider is implemented by component-like values that expose their
// props. Props may return any modifier source: Mods, a string-keyed map, or a
// struct.
type PropsProvider interface {
	Props() any
}

// StateProvider is implemented by component-like values that expose their
// current state. State is merged after props and overrides it key by key.
type StateProvider interface {
	State() any
}

// Component[P, S] pairs props with state and implements both providers.
//
// Embed it, or build one per render, when the component itself does not
// already expose Props and State:
//
//	type Props struct {
//	    Size string `mod:"size"`
//	}
//	type State struct {
//	    Open bool `mod:"open"`
//	}
//
//	c := propmods.NewComponent(Props{Size: "lg"}, State{Open: true})
//	menu.Class(c)  // "Menu Menu_size_lg Menu_open"
type Component[P, S any] struct {
	props P
	state S
}

// NewComponent creates a component value from props and state.
func NewComponent[P, S any](props P, state S) Component[P, S] {
	return Component[P, S]{props: props, state: state}
}

// Props returns the component's props.
func (c Component[P, S]) Props() any {
	return c.props
}

// State returns the component's state.
func (c Component[P, S]) State() any {
	return c.state
}

// WithProps returns a copy with props replaced.
func (c Component[P, S]) WithProps(props P) Component[P, S] {
	c.props = props
	return c
}

// WithState returns a copy with state replaced.
func (c Component[P, S]) WithState(state S) Component[P, S] {
	c.state = state
	return c
}
