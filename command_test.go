package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MixinNetwork/filaddress/address"
	"github.com/stretchr/testify/require"
)

func runCommand(args ...string) (string, error) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf
	app.ErrWriter = &buf
	err := app.Run(append([]string{"filaddress"}, args...))
	return buf.String(), err
}

func TestDecodeAddressCommand(t *testing.T) {
	require := require.New(t)

	out, err := runCommand("decodeaddress", "--address", "t15ihq5ibzwki2b4ep2f46avlkrqzhpqgtga7pdrq")
	require.Nil(err)
	require.Contains(out, "network:\ttestnet\n")
	require.Contains(out, "protocol:\tsecp256k1\n")
	require.Contains(out, "payload:\tea0f0ea039b291a0f08fd179e0556a8c3277c0d3\n")
	require.Contains(out, "mainnet:\tf15ihq5ibzwki2b4ep2f46avlkrqzhpqgtga7pdrq\n")
	require.Contains(out, "testnet:\tt15ihq5ibzwki2b4ep2f46avlkrqzhpqgtga7pdrq\n")
	require.NotContains(out, "id:")

	out, err = runCommand("decodeaddress", "-a", "f01729")
	require.Nil(err)
	require.Contains(out, "network:\tmainnet\n")
	require.Contains(out, "protocol:\tid\n")
	require.Contains(out, "bytes:\t\t00c10d\n")
	require.Contains(out, "id:\t\t1729\n")

	_, err = runCommand("decodeaddress", "--address", "t4vvmn62lofvhjd2ugzca6sof2j2ubwok6cj4xxbfzz4yuxfkgobpihhd2thlanmsh3w2ptld2gqkn2jvlss4a")
	require.ErrorIs(err, address.ErrUnknownProtocol)
	_, err = runCommand("decodeaddress")
	require.ErrorIs(err, address.ErrInvalidLength)
}

func TestEncodeAddressCommands(t *testing.T) {
	require := require.New(t)

	out, err := runCommand("encodeaddress", "--protocol", "secp256k1", "--payload", "ea0f0ea039b291a0f08fd179e0556a8c3277c0d3", "--network", "testnet")
	require.Nil(err)
	require.Equal("t15ihq5ibzwki2b4ep2f46avlkrqzhpqgtga7pdrq\n", out)
	out, err = runCommand("encodeaddress", "--protocol", "0", "--payload", "c10d")
	require.Nil(err)
	require.Equal("f01729\n", out)
	_, err = runCommand("encodeaddress", "--protocol", "bls", "--payload", "ea0f")
	require.ErrorIs(err, address.ErrInvalidPayloadLength)
	_, err = runCommand("encodeaddress", "--protocol", "ed25519", "--payload", "ea0f")
	require.ErrorIs(err, address.ErrUnknownProtocol)
	_, err = runCommand("encodeaddress", "--protocol", "actor", "--payload", "xyz")
	require.NotNil(err)
	_, err = runCommand("encodeaddress", "--protocol", "0", "--payload", "c10d", "--network", "devnet")
	require.ErrorIs(err, address.ErrUnknownNetwork)

	out, err = runCommand("idaddress", "--id", "99", "--network", "testnet")
	require.Nil(err)
	require.Equal("t099\n", out)

	out, err = runCommand("actoraddress", "--data", "7361746f736869")
	require.Nil(err)
	require.Equal("f2i4llai5x72clnz643iydyplvjmni74x4vyme7ny\n", out)

	pub := make([]byte, 65)
	for i := range pub {
		pub[i] = byte(i)
	}
	out, err = runCommand("secp256k1address", "--pubkey", hex.EncodeToString(pub))
	require.Nil(err)
	require.Equal("f1p2gxtjikb66yx6rmmbpfvoed3ofu5iwg5c4q2ky\n", out)
	_, err = runCommand("secp256k1address", "--pubkey", hex.EncodeToString(pub[:33]))
	require.NotNil(err)

	out, err = runCommand("blsaddress", "--pubkey", hex.EncodeToString(pub[:48]), "--network", "testnet")
	require.Nil(err)
	require.Equal("t3aaaqeayeaudaocajbifqydiob4ibceqtcqkrmfyydenbwha5dypsaijcemsckjrhfausukzmfuxc7xayzmkq\n", out)
	_, err = runCommand("blsaddress", "--pubkey", hex.EncodeToString(pub))
	require.ErrorIs(err, address.ErrInvalidPayloadLength)
}

func TestValidateAddressCommand(t *testing.T) {
	require := require.New(t)

	out, err := runCommand("validateaddress", "--address", "t099")
	require.Nil(err)
	require.Equal("true\n", out)
	out, err = runCommand("validateaddress", "--address", "t100")
	require.Nil(err)
	require.Equal("false\n", out)
	out, err = runCommand("validateaddress")
	require.Nil(err)
	require.Equal("false\n", out)

	out, err = runCommand("verifyaddress", "--address", "f1egh23o5qy2ibkqwawqyjague4urpxiyf672l6zi")
	require.Nil(err)
	require.Equal("ok\n", out)
	_, err = runCommand("verifyaddress", "--address", "t1egh23o5qy2ibkqwawqyjague4urpxiyf672l6zi")
	require.NotNil(err)

	out, err = runCommand("verifyaddress", "--network", "testnet", "--address", "t1egh23o5qy2ibkqwawqyjague4urpxiyf672l6zi")
	require.Nil(err)
	require.Equal("ok\n", out)
	_, err = runCommand("verifyaddress", "--network", "devnet", "--address", "f1egh23o5qy2ibkqwawqyjague4urpxiyf672l6zi")
	require.NotNil(err)
}

func TestCommandConfig(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	conf := strings.Join([]string{
		"[network]",
		"mainnet-prefix = \"m\"",
		"testnet-prefix = \"n\"",
		"default = \"testnet\"",
		"[log]",
		"level = 1",
	}, "\n")
	err := os.WriteFile(file, []byte(conf), 0600)
	require.Nil(err)

	out, err := runCommand("--config", file, "idaddress", "--id", "99")
	require.Nil(err)
	require.Equal("n099\n", out)
	out, err = runCommand("-c", file, "validateaddress", "--address", "t099")
	require.Nil(err)
	require.Equal("false\n", out)
	out, err = runCommand("-c", file, "decodeaddress", "--address", "m099")
	require.Nil(err)
	require.Contains(out, "network:\tmainnet\n")
	require.Contains(out, "testnet:\tn099\n")
	out, err = runCommand("-c", file, "verifyaddress", "--address", "n1egh23o5qy2ibkqwawqyjague4urpxiyf672l6zi")
	require.Nil(err)
	require.Equal("ok\n", out)
	_, err = runCommand("-c", file, "verifyaddress", "--address", "f1egh23o5qy2ibkqwawqyjague4urpxiyf672l6zi")
	require.ErrorIs(err, address.ErrUnknownNetwork)
	_, err = runCommand("-c", file, "verifyaddress", "--network", "mainnet", "--address", "n1egh23o5qy2ibkqwawqyjague4urpxiyf672l6zi")
	require.ErrorIs(err, address.ErrUnknownNetwork)

	_, err = runCommand("--config", filepath.Join(dir, "missing.toml"), "idaddress", "--id", "99")
	require.NotNil(err)
	_, err = runCommand("--filter", "(", "idaddress", "--id", "99")
	require.NotNil(err)
}
