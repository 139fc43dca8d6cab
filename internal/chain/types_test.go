package chain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTokenKind(t *testing.T) {
	k, ok := ParseTokenKind("Erc20")
	assert.True(t, ok)
	assert.Equal(t, Fungible, k)

	k, ok = ParseTokenKind("Erc721")
	assert.True(t, ok)
	assert.Equal(t, NonFungible, k)

	_, ok = ParseTokenKind("Erc1155")
	assert.False(t, ok)
}

func TestTokenKindMarshalJSON(t *testing.T) {
	b, err := json.Marshal(Fungible)
	assert.NoError(t, err)
	assert.Equal(t, `"Erc20"`, string(b))

	b, err = json.Marshal(NonFungible)
	assert.NoError(t, err)
	assert.Equal(t, `"Erc721"`, string(b))
}

func TestTokenMarshalsTokenIDAsString(t *testing.T) {
	tok := Token{ID: 7, Kind: Fungible, Name: "My Token"}
	b, err := json.Marshal(tok)
	assert.NoError(t, err)

	var raw map[string]any
	assert.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "7", raw["tokenId"])
}
