package uuid62json_test

import (
	"encoding/json"
	"testing"
	"uuid62/pkg/uuid62"
	"uuid62/pkg/uuid62/uuid62json"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	knownCanonical = "86559453-e224-4921-baee-6fb5c0252e85"
	knownBase62    = "45u546Dsoz0Tm4GxDxj9qZ"
	knownPacked    = "GWFlTJOJJFiuuftaBuEXKE"
)

func TestCodec_Marshal(t *testing.T) {
	id := uuid.MustParse(knownCanonical)

	tests := []struct {
		format uuid62.Format
		want   string
	}{
		{format: uuid62.FormatBase62, want: `"` + knownBase62 + `"`},
		{format: uuid62.FormatPacked, want: `"` + knownPacked + `"`},
		{format: uuid62.FormatCanonical, want: `"` + knownCanonical + `"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			c := uuid62json.New(uuid62json.Options{Format: tt.format})

			out, err := c.Marshal(id)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(out))

			back, err := c.Unmarshal(out)
			require.NoError(t, err)
			require.Equal(t, id, back)
		})
	}
}

func TestCodec_DefaultFormat(t *testing.T) {
	c := uuid62json.New(uuid62json.Options{})
	require.Equal(t, uuid62.FormatBase62, c.Options().Format)
	require.Equal(t, knownBase62, c.Text(uuid.MustParse(knownCanonical)))
}

func TestCodec_AcceptCanonical(t *testing.T) {
	id := uuid.MustParse(knownCanonical)

	lenient := uuid62json.New(uuid62json.DefaultOptions())
	got, err := lenient.Unmarshal([]byte(`"` + knownCanonical + `"`))
	require.NoError(t, err)
	require.Equal(t, id, got)

	strict := uuid62json.New(uuid62json.Options{Format: uuid62.FormatBase62})
	_, err = strict.Unmarshal([]byte(`"` + knownCanonical + `"`))
	require.ErrorIs(t, err, uuid62.ErrInvalidLength)
}

func TestCodec_DecodeErrors(t *testing.T) {
	c := uuid62json.New(uuid62json.DefaultOptions())

	for _, in := range []string{`123`, `null`, `{}`, `["` + knownBase62 + `"]`} {
		_, err := c.Unmarshal([]byte(in))
		require.ErrorIs(t, err, uuid62json.ErrNotString, in)
	}

	_, err := c.Unmarshal([]byte(`"ZZZZZZZZZZZZZZZZZZZZZZ"`))
	require.ErrorIs(t, err, uuid62.ErrOverflow)

	_, err = c.Unmarshal([]byte(`"45u546Dsoz0Tm4GxDxj9q!"`))
	require.ErrorIs(t, err, uuid62.ErrInvalidCharacter)
}

// Rewriting a canonical document through the codec and back must be stable.
func TestCodec_RewriteIsIdempotent(t *testing.T) {
	c := uuid62json.New(uuid62json.DefaultOptions())

	rewrite := func(doc []byte) []byte {
		var ids []uuid.UUID
		require.NoError(t, jx.DecodeBytes(doc).Arr(func(d *jx.Decoder) error {
			id, err := c.Decode(d)
			ids = append(ids, id)

			return err
		}))

		var e jx.Encoder
		e.ArrStart()
		for _, id := range ids {
			c.Encode(&e, id)
		}
		e.ArrEnd()

		return e.Bytes()
	}

	canonicalDoc := []byte(`["` + knownCanonical + `","00000000-0000-0000-0000-000000000000"]`)
	once := rewrite(canonicalDoc)
	require.JSONEq(t, `["`+knownBase62+`","0000000000000000000000"]`, string(once))
	require.JSONEq(t, string(once), string(rewrite(once)))
}

func TestID_StructFields(t *testing.T) {
	type payload struct {
		ID     uuid62json.ID `json:"id"`
		LongID uuid.UUID     `json:"longId"`
	}

	id := uuid.MustParse(knownCanonical)
	out, err := json.Marshal(payload{ID: uuid62json.ID(id), LongID: id})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"`+knownBase62+`","longId":"`+knownCanonical+`"}`, string(out))

	var back payload
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, id, back.ID.UUID())
	require.Equal(t, id, back.LongID)

	// canonical input is accepted for the compact field too
	require.NoError(t, json.Unmarshal([]byte(`{"id":"`+knownCanonical+`"}`), &back))
	require.Equal(t, id, back.ID.UUID())

	require.Error(t, json.Unmarshal([]byte(`{"id":"nope"}`), &back))
}

func TestID_Text(t *testing.T) {
	id := uuid62json.ID(uuid.MustParse(knownCanonical))
	require.Equal(t, knownBase62, id.String())

	text, err := id.MarshalText()
	require.NoError(t, err)
	require.Equal(t, knownBase62, string(text))

	var back uuid62json.ID
	require.NoError(t, back.UnmarshalText(text))
	require.Equal(t, id, back)

	// map keys go through the text encoding
	out, err := json.Marshal(map[uuid62json.ID]int{id: 1})
	require.NoError(t, err)
	require.JSONEq(t, `{"`+knownBase62+`":1}`, string(out))
}

func TestID_JX(t *testing.T) {
	id := uuid62json.ID(uuid.MustParse(knownCanonical))

	var e jx.Encoder
	id.Encode(&e)
	require.Equal(t, `"`+knownBase62+`"`, string(e.Bytes()))

	var back uuid62json.ID
	require.NoError(t, back.Decode(jx.DecodeBytes(e.Bytes())))
	require.Equal(t, id, back)

	var nilID *uuid62json.ID
	require.Error(t, nilID.Decode(jx.DecodeStr(`"`+knownBase62+`"`)))
}
