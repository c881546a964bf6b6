package kmip

import "strings"

const (
	AttributeNameState          = "State"
	AttributeNameActivationDate = "Activation Date"
)

// Capabilities tells who may set, change and delete an attribute over the
// life of a managed object.
type Capabilities struct {
	AlwaysPresent       bool
	ServerInitializable bool
	ClientInitializable bool
	ClientDeletable     bool
	MultiInstance       bool

	serverModifiable func(State) bool
	clientModifiable func(State) bool
}

// ServerModifiable reports whether the server may change the attribute of an
// object in state s.
func (c Capabilities) ServerModifiable(s State) bool {
	return c.serverModifiable != nil && c.serverModifiable(s)
}

// ClientModifiable reports whether a client may change the attribute of an
// object in state s.
func (c Capabilities) ClientModifiable(s State) bool {
	return c.clientModifiable != nil && c.clientModifiable(s)
}

// ManagedAttribute is implemented by attribute types with lifecycle rules.
type ManagedAttribute interface {
	AttributeName() string
	Capabilities() Capabilities
}

var (
	_ ManagedAttribute = State(0)
	_ ManagedAttribute = ActivationDate{}
	_ ManagedAttribute = Attribute{}
	_ ManagedAttribute = CustomAttribute{}
)

func always(State) bool { return true }

func inState(want State) func(State) bool {
	return func(s State) bool { return s == want }
}

var standardCapabilities = map[string]Capabilities{
	AttributeNameState: {
		AlwaysPresent:       true,
		ServerInitializable: true,
		serverModifiable:    always,
	},
	AttributeNameActivationDate: {
		ServerInitializable: true,
		ClientInitializable: true,
		serverModifiable:    inState(StatePreActive),
		clientModifiable:    inState(StatePreActive),
	},
}

// CapabilitiesOf returns the rules for the attribute called name. Custom names
// get the rules of their prefix. It reports false for names it does not know.
func CapabilitiesOf(name string) (Capabilities, bool) {
	if IsCustomAttributeName(name) {
		return customCapabilities(name), true
	}
	c, ok := standardCapabilities[name]
	return c, ok
}

func customCapabilities(name string) Capabilities {
	server := func(State) bool { return IsServerAttributeName(name) }
	client := func(State) bool { return IsClientAttributeName(name) }
	return Capabilities{
		ServerInitializable: true,
		ClientInitializable: true,
		ClientDeletable:     IsClientAttributeName(name),
		MultiInstance:       true,
		serverModifiable:    server,
		clientModifiable:    client,
	}
}

// IsClientAttributeName reports whether name has the "x-" prefix of
// client-defined attributes, in any case.
func IsClientAttributeName(name string) bool { return hasPrefixFold(name, "x-") }

// IsServerAttributeName reports whether name has the "y-" prefix of
// server-defined attributes, in any case.
func IsServerAttributeName(name string) bool { return hasPrefixFold(name, "y-") }

func IsCustomAttributeName(name string) bool {
	return IsClientAttributeName(name) || IsServerAttributeName(name)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func (State) AttributeName() string { return AttributeNameState }
func (State) Capabilities() Capabilities {
	return standardCapabilities[AttributeNameState]
}

func (ActivationDate) AttributeName() string { return AttributeNameActivationDate }
func (ActivationDate) Capabilities() Capabilities {
	return standardCapabilities[AttributeNameActivationDate]
}

func (a Attribute) AttributeName() string { return string(a.Name) }

// Capabilities returns the rules for the attribute a names. Unknown names get
// the zero Capabilities, which allows nothing.
func (a Attribute) Capabilities() Capabilities {
	c, _ := CapabilitiesOf(string(a.Name))
	return c
}
