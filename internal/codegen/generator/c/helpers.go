package cgen

import (
	"github.com/Alia5/ridl/internal/codegen/common"
	"github.com/Alia5/ridl/schema"
)

// registerSymbol builds <DEVICE>_<REGISTER>_INDEX.
func registerSymbol(device string, r *schema.Register) string {
	return common.MacroName(common.Upper(device), common.Identifier(r.Name), "INDEX")
}

// fieldSymbol builds <DEVICE>_<REGISTER>_<FIELD>. Only register names have
// their spaces replaced.
func fieldSymbol(device string, r *schema.Register, f *schema.Field) string {
	return common.MacroName(common.Upper(device), common.Identifier(r.Name), common.Upper(f.Name))
}

func includeGuard(device string) string {
	return common.MacroName(common.Identifier(device), "H")
}
