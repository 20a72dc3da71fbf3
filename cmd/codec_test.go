package main

import (
	"bytes"
	"strings"
	"testing"
	"uuid62/internal/config"
	"uuid62/pkg/uuid62"

	"github.com/stretchr/testify/require"
)

func TestEncodeIDs(t *testing.T) {
	var out bytes.Buffer
	err := encodeIDs(&out, uuid62.FormatBase62, []string{"86559453-e224-4921-baee-6fb5c0252e85"}, 2)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "86559453-e224-4921-baee-6fb5c0252e85\t45u546Dsoz0Tm4GxDxj9qZ", lines[0])
	for _, line := range lines[1:] {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 2)
		id, err := uuid62.FromBase62(fields[1])
		require.NoError(t, err)
		require.Equal(t, fields[0], id.String())
	}
}

func TestEncodeIDs_Packed(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, encodeIDs(&out, uuid62.FormatPacked, []string{"86559453-e224-4921-baee-6fb5c0252e85"}, 0))
	require.Equal(t, "86559453-e224-4921-baee-6fb5c0252e85\tGWFlTJOJJFiuuftaBuEXKE\n", out.String())
}

func TestEncodeIDs_InvalidUUID(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, encodeIDs(&out, uuid62.FormatBase62, []string{"nope"}, 0))
	require.Empty(t, out.String())
}

func TestEncodeIDs_NegativeRandom(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, encodeIDs(&out, uuid62.FormatBase62, []string{"86559453-e224-4921-baee-6fb5c0252e85"}, -5))
	require.Empty(t, out.String())
}

func TestEncodeCommand_NegativeRandom(t *testing.T) {
	cmd := encodeCommand(&config.Config{})
	cmd.SetArgs([]string{"--random=-5", "86559453-e224-4921-baee-6fb5c0252e85"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.ErrorContains(t, err, "must not be negative")
}

func TestDecodeIDs(t *testing.T) {
	var out bytes.Buffer
	err := decodeIDs(&out, uuid62.FormatBase62, []string{
		"45u546Dsoz0Tm4GxDxj9qZ",
		"86559453-e224-4921-baee-6fb5c0252e85",
	})
	require.NoError(t, err)
	require.Equal(t,
		"45u546Dsoz0Tm4GxDxj9qZ\t86559453-e224-4921-baee-6fb5c0252e85\n"+
			"86559453-e224-4921-baee-6fb5c0252e85\t86559453-e224-4921-baee-6fb5c0252e85\n",
		out.String())
}

func TestDecodeIDs_Errors(t *testing.T) {
	for _, arg := range []string{"short", "ZZZZZZZZZZZZZZZZZZZZZZ", "45u546Dsoz0Tm4GxDxj9q!"} {
		var out bytes.Buffer
		require.Error(t, decodeIDs(&out, uuid62.FormatBase62, []string{arg}), arg)
	}
}

func TestFormatFlag(t *testing.T) {
	cfg := &config.Config{}
	cfg.UUID62.Format = "packed"

	cmd := decodeCommand(cfg)
	f, err := formatFlag(cmd, "from", cfg)
	require.NoError(t, err)
	require.Equal(t, uuid62.FormatPacked, f)

	require.NoError(t, cmd.Flags().Set("from", "canonical"))
	f, err = formatFlag(cmd, "from", cfg)
	require.NoError(t, err)
	require.Equal(t, uuid62.FormatCanonical, f)

	require.NoError(t, cmd.Flags().Set("from", "hex"))
	_, err = formatFlag(cmd, "from", cfg)
	require.ErrorIs(t, err, uuid62.ErrUnknownFormat)
}
