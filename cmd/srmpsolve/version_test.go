package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srmp/cfn/uai"
)

func TestVersionCmdPrintsFormatVersion(t *testing.T) {
	cmd := newVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))
	require.Equal(t, "srmpsolve "+uai.FormatVersion.String()+"\n", out.String())
}
