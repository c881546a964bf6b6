// Package kmip defines a set of KMIP domain types on top of the ttlv codec:
// protocol versions, object attributes and request messages.
package kmip

import "github.com/oy3o/ttlv"

// ModuleName names the module returned by Module.
const ModuleName = "kmip"

// Module returns a fresh module with every type of this package registered.
func Module() *ttlv.Module {
	mod := ttlv.NewModule(ModuleName)
	registerProtocolVersion(mod)
	registerOperation(mod)
	registerAttributes(mod)
	registerAttribute(mod)
	registerCustomAttribute(mod)
	registerMessage(mod)
	return mod
}

// NewMapper returns a mapper with Module installed ahead of any modules in opts.
func NewMapper(opts ...ttlv.Option) *ttlv.Mapper {
	return ttlv.NewMapper(append([]ttlv.Option{ttlv.WithModules(Module())}, opts...)...)
}
