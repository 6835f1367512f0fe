package cmd

import (
	"fmt"
	"io"

	"github.com/Alia5/ridl/internal/codegen/common"
)

// Version prints the build version.
type Version struct{}

func (v *Version) Run(stdout io.Writer) error {
	version, err := common.GetVersion()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "ridl %s\n", version)
	return err
}
