package t3_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiber-space/t3"
	"github.com/fiber-space/t3/internal/fixture"
)

// tlvCase mirrors one row of testdata/tlv_cases.yaml.
type tlvCase struct {
	Name  string `yaml:"name"`
	Hex   string `yaml:"hex"`
	Tag   string `yaml:"tag"`
	Len   string `yaml:"len"`
	Value string `yaml:"value"`
}

func newTlvTable(t *testing.T) *t3.Table {
	t.Helper()

	tlv := t3.NewTable("Tlv")
	tlv, err := tlv.Add(1, "Tag", t3.MustHex(0))
	require.NoError(t, err)
	tlv, err = tlv.Add(1, "Len", t3.NewBinding(func(v t3.Value) t3.Value {
		if v.IsNull() {
			return t3.MustHex(0)
		}
		return t3.MustHex(v.Len() / 2)
	}, "Value"))
	require.NoError(t, err)
	tlv, err = tlv.Add(t3.FnPattern(func(env t3.Env, _ t3.Value) (any, error) {
		tbl := env.(*t3.Table)
		ln, ok := tbl.Get("Len")
		if !ok {
			return nil, fmt.Errorf("no Len field")
		}
		return int(ln.(t3.Value).Int64()) * 2, nil
	}), "Value", t3.MustHex(0))
	require.NoError(t, err)
	return tlv
}

// TestTlvFixtures grounds spec.md §8's BER-TLV scenario against a small
// table of YAML fixtures, loaded the way the teacher's parse_test.go
// loads its own YAML-driven cases (internal/fixture wraps gopkg.in/yaml.v3).
func TestTlvFixtures(t *testing.T) {
	t.Parallel()

	var cases []tlvCase
	require.NoError(t, fixture.Load("testdata/tlv_cases.yaml", &cases))
	require.NotEmpty(t, cases)

	tlv := newTlvTable(t)
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			t.Parallel()

			got, err := tlv.Parse(t3.MustHex(c.Hex))
			require.NoError(t, err)

			tag, ok := got.Get("Tag")
			require.True(t, ok)
			require.True(t, tag.(t3.Value).Equal(t3.MustHex(c.Tag)))

			ln, ok := got.Get("Len")
			require.True(t, ok)
			require.True(t, ln.(t3.Value).Equal(t3.MustHex(c.Len)))

			val, ok := got.Get("Value")
			require.True(t, ok)
			require.True(t, val.(t3.Value).Equal(t3.MustHex(c.Value)))
		})
	}
}
